package ports

// CommandRunner executes external programs from an argument vector. No shell is involved.
type CommandRunner interface {
	// RunInteractive executes a command with stdin, stdout, and stderr connected
	// to the terminal for interactive use. Returns error if command fails.
	RunInteractive(name string, args ...string) error
}
