package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. The Runner, the launcher table, and
// the git root finder all spawn processes through this seam, so tests can
// substitute recorded invocations for real spawns.
type Executor interface {
	// Command creates an exec.Cmd for the given program and arguments.
	Command(name string, args ...string) *exec.Cmd

	// CommandContext creates a context-aware exec.Cmd.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor spawns processes with os/exec.
type RealExecutor struct{}

// Command creates a standard exec.Cmd.
func (e *RealExecutor) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
