package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"chartmenu/internal/ports"

	"golang.org/x/term"
	"gopkg.in/AlecAivazis/survey.v1"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads prompted lines from an input stream. On a terminal, passwords are read
// through a hidden survey prompt.
type TerminalInput struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// ProvideTerminalInput creates a TerminalInput bound to the process stdin and stdout.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		fd:     int(os.Stdin.Fd()),
	}
}

// NewTerminalInput creates a TerminalInput over arbitrary streams. It never reports a terminal.
func NewTerminalInput(in io.Reader, out io.Writer) *TerminalInput {
	return &TerminalInput{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     -1,
	}
}

// ReadLine prints the prompt and returns the next line without its line terminator.
func (t *TerminalInput) ReadLine(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword prompts for a password and returns the input without echoing to the terminal.
// Piped input is read as a plain line.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	if !t.IsTerminal() {
		return t.ReadLine(prompt)
	}
	password := ""
	err := survey.AskOne(
		&survey.Password{Message: passwordMessage(prompt)},
		&password,
		survey.Required,
		survey.WithStdio(os.Stdin, os.Stdout, os.Stderr),
	)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(password), nil
}

// passwordMessage drops the trailing ": " of a line prompt; survey renders its own.
func passwordMessage(prompt string) string {
	return strings.TrimSuffix(strings.TrimSpace(prompt), ":")
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return t.fd >= 0 && term.IsTerminal(t.fd)
}
