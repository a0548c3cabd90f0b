package container_orchestrator

import (
	"errors"

	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm CLI.
type HelmClient struct {
	commandRunner ports.CommandRunner
	binary        string
}

// ProvideHelmClient creates a HelmClient for Wire dependency injection.
func ProvideHelmClient(runner ports.CommandRunner, config *domain.Config) *HelmClient {
	binary := config.HelmBinary
	if binary == "" {
		binary = domain.DefaultHelmBinary
	}
	return &HelmClient{
		commandRunner: runner,
		binary:        binary,
	}
}

// Execute runs the operation with the terminal attached.
func (h *HelmClient) Execute(op domain.HelmOperation) error {
	args := op.Args()
	err := h.commandRunner.RunInteractive(h.binary, args...)
	if err == nil {
		return nil
	}

	exitCode := -1
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		exitCode = coded.ExitCode()
	}
	return &domain.ExternalCommandError{
		Args:     args,
		ExitCode: exitCode,
		Err:      err,
	}
}
