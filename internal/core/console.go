package core

import (
	"io"
	"os"
)

// Console holds the streams user-facing output is written to.
type Console struct {
	Out io.Writer
	Err io.Writer
}

func ProvideConsole() Console {
	return Console{Out: os.Stdout, Err: os.Stderr}
}
