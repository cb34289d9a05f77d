package render

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with the process's standard streams so the operator
// sees the renderer's own progress output.
type ExecRunner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits os.Stdin, os.Stdout and os.Stderr.
func NewExecRunner(dir string) *ExecRunner {
	return &ExecRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run blocks until the command exits. A non-zero exit is returned as a CommandError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmdline := strings.Join(append([]string{name}, args...), " ")

	if _, err := exec.LookPath(name); err != nil {
		return &CommandError{
			Command: cmdline,
			Message: "executable not found in PATH",
			Cause:   err,
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return &CommandError{
			Command: cmdline,
			Message: "command failed",
			Cause:   err,
		}
	}
	return nil
}
