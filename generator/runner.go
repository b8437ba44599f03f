package generator

import (
	"context"
	"errors"
	"os/exec"
)

// CommandRunner starts an external command and waits for it to exit.
// Run returns the combined stdout and stderr of the command. A non-nil
// error means the command could not be started or exited non-zero.
type CommandRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RunnerFunc adapts an ordinary function to the CommandRunner interface.
type RunnerFunc func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Run implements CommandRunner.
func (f RunnerFunc) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	return f(ctx, dir, name, args...)
}

// ExecRunner runs commands as child processes via os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// Ensure the runners implement CommandRunner at compile time.
var (
	_ CommandRunner = ExecRunner{}
	_ CommandRunner = RunnerFunc(nil)
)

// exitCode extracts a process exit status from err, or -1 when the
// process never ran to completion.
func exitCode(err error) int {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}
