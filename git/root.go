package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/grovetools/launch/command"
)

// RootFinder locates the top-level directory of the project containing a
// given directory. Detection is a host capability; the resolver only
// consumes its result.
type RootFinder interface {
	// Root returns the project root for dir, or "" when dir is not inside
	// a recognized project.
	Root(ctx context.Context, dir string) string
}

// CLIRootFinder implements RootFinder using the git CLI.
type CLIRootFinder struct {
	executor command.Executor
}

var _ RootFinder = (*CLIRootFinder)(nil)

// NewCLIRootFinder creates a git-based root finder.
func NewCLIRootFinder() *CLIRootFinder {
	return &CLIRootFinder{executor: &command.RealExecutor{}}
}

// NewCLIRootFinderWithExecutor creates a git-based root finder with a custom
// executor.
func NewCLIRootFinderWithExecutor(exec command.Executor) *CLIRootFinder {
	return &CLIRootFinder{executor: exec}
}

// Root returns the git worktree root for dir, or "" outside a repository.
// A missing git binary is treated the same as not being in a repository.
func (f *CLIRootFinder) Root(ctx context.Context, dir string) string {
	cmd := f.executor.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	root := strings.TrimSpace(string(output))
	if root == "" {
		return ""
	}
	return filepath.Clean(root)
}

// StaticRoot is a RootFinder that always reports a fixed root. It backs
// tests and hosts that resolve the root themselves.
type StaticRoot string

// Root implements RootFinder.
func (s StaticRoot) Root(ctx context.Context, dir string) string {
	return string(s)
}
