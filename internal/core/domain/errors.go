package domain

import (
	"fmt"
	"strings"
)

// RegistryError is returned when the chart catalog cannot be reached, answers with a
// failure status or sends a body that cannot be decoded.
type RegistryError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *RegistryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("catalog %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// ExternalCommandError is returned when helm exits with a non-zero status. ExitCode is -1
// when the process could not be started.
type ExternalCommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *ExternalCommandError) Error() string {
	return fmt.Sprintf("helm %s failed with exit code %d: %v", strings.Join(e.Args, " "), e.ExitCode, e.Err)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}
