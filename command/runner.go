package command

import (
	"context"
	"os"

	"github.com/grovetools/launch/errors"
)

// Runner executes already-expanded command lines, attaching them to the
// caller's stdio. The shell is only used as a literal pass-through; no
// placeholder expansion happens at this layer.
type Runner struct {
	executor Executor
}

// NewRunner creates a Runner backed by a RealExecutor.
func NewRunner() *Runner {
	return NewRunnerWithExecutor(&RealExecutor{})
}

// NewRunnerWithExecutor creates a Runner with a custom Executor.
func NewRunnerWithExecutor(exec Executor) *Runner {
	return &Runner{executor: exec}
}

// RunShell runs a command line through `sh -c` in the given working
// directory. An empty dir runs in the caller's working directory.
func (r *Runner) RunShell(ctx context.Context, line string, dir string) error {
	cmd := r.executor.CommandContext(ctx, "sh", "-c", line)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.CommandFailed(line, err)
	}
	return nil
}

// RunProgram runs a single program with arguments, without shell
// interpretation.
func (r *Runner) RunProgram(ctx context.Context, name string, args []string, dir string) error {
	cmd := r.executor.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.CommandFailed(name, err)
	}
	return nil
}
