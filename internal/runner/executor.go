package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// Executor runs commands to completion.
type Executor interface {
	Run(ctx context.Context, dir string, cmd Command) error
}

// execCommand wraps exec.CommandContext for testability.
var execCommand = exec.CommandContext

// findExecutable wraps exec.LookPath for testability.
var findExecutable = exec.LookPath

// OSExecutor runs commands as child processes wired to the given streams.
type OSExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSExecutor returns an executor attached to the process's own stdio.
func NewOSExecutor() *OSExecutor {
	return &OSExecutor{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *OSExecutor) Run(ctx context.Context, dir string, cmd Command) error {
	c := execCommand(ctx, cmd.Name, cmd.Args...)
	c.Dir = dir
	c.Stdin = e.Stdin
	c.Stdout = e.Stdout
	c.Stderr = e.Stderr

	if err := c.Run(); err != nil {
		return &CommandError{Command: cmd, Err: err}
	}
	return nil
}

// LookPath reports the full path of a program found in PATH.
func LookPath(name string) (string, error) {
	return findExecutable(name)
}
