package command_runner

import (
	"os"
	"os/exec"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/ports"

	"github.com/kballard/go-shellquote"
)

// OsCommandRunner executes commands using os/exec.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) RunInteractive(name string, args ...string) error {
	log.Logger().Debugf("running %s", commandLine(name, args))
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// commandLine renders the argument vector the way a shell user would type it.
func commandLine(name string, args []string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
