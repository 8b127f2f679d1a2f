// Package workflow ties the core components together: build directory
// resolution, executable discovery, similarity ranking, and template
// expansion. Each call recomputes its project context from scratch; nothing
// is shared or cached between invocations.
package workflow

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/launch/builddir"
	"github.com/grovetools/launch/config"
	"github.com/grovetools/launch/debugger"
	"github.com/grovetools/launch/discover"
	"github.com/grovetools/launch/git"
	"github.com/grovetools/launch/logging"
	"github.com/grovetools/launch/pathinfo"
	"github.com/grovetools/launch/rank"
	"github.com/grovetools/launch/template"
)

// Workflow runs the "locate and launch" operations against one configuration
// and one project-root capability.
type Workflow struct {
	cfg   *config.Config
	roots git.RootFinder
	log   *logrus.Entry
}

// New creates a Workflow. roots may be nil, in which case git detection is
// used.
func New(cfg *config.Config, roots git.RootFinder) *Workflow {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if roots == nil {
		roots = git.NewCLIRootFinder()
	}
	return &Workflow{
		cfg:   cfg,
		roots: roots,
		log:   logging.NewLogger("workflow"),
	}
}

// projectContext assembles the per-invocation facts for currentFile, which
// may be empty when no file backs the caller's context.
func (w *Workflow) projectContext(ctx context.Context, currentFile string) builddir.Context {
	startDir := ""
	if currentFile != "" {
		startDir = filepath.Dir(currentFile)
	} else if cwd, err := os.Getwd(); err == nil {
		startDir = cwd
	}

	root := ""
	if startDir != "" {
		root = w.roots.Root(ctx, startDir)
	}

	return builddir.Context{
		CurrentFile: currentFile,
		ProjectRoot: root,
	}
}

// BuildDir resolves the build directory for currentFile. An empty result
// means no layer produced one, which is valid.
func (w *Workflow) BuildDir(ctx context.Context, currentFile string) (string, error) {
	pctx := w.projectContext(ctx, currentFile)
	return builddir.NewResolver(w.cfg.BuildDir).Resolve(pctx)
}

// Candidates resolves the build directory, discovers executables under it,
// and ranks them by similarity to currentFile's basename. An empty list is a
// valid "no candidates" outcome, not an error.
func (w *Workflow) Candidates(ctx context.Context, currentFile string) ([]rank.Candidate, error) {
	pctx := w.projectContext(ctx, currentFile)

	dir, err := builddir.NewResolver(w.cfg.BuildDir).Resolve(pctx)
	if err != nil {
		return nil, err
	}

	paths := discover.Executables(dir)
	reference := pathinfo.From(currentFile).FileName

	candidates := rank.BySimilarity(reference, paths)
	w.log.WithFields(logrus.Fields{
		"dir":        dir,
		"candidates": len(candidates),
	}).Debug("ranked executable candidates")
	return candidates, nil
}

// Values assembles the template replacement values for currentFile,
// including the resolved build directory.
func (w *Workflow) Values(ctx context.Context, currentFile string) (template.Values, error) {
	pctx := w.projectContext(ctx, currentFile)

	dir, err := builddir.NewResolver(w.cfg.BuildDir).Resolve(pctx)
	if err != nil {
		return template.Values{}, err
	}

	return template.Values{
		Path:        pathinfo.From(currentFile),
		ProjectRoot: pctx.ProjectRoot,
		BuildDir:    dir,
	}, nil
}

// ExpandCommand expands a command template's tokens for currentFile.
func (w *Workflow) ExpandCommand(ctx context.Context, tmpl string, currentFile string) (string, error) {
	values, err := w.Values(ctx, currentFile)
	if err != nil {
		return "", err
	}
	return template.Expand(tmpl, values), nil
}

// Templates returns the configured command templates in offer order.
func (w *Workflow) Templates() []string {
	return w.cfg.Templates()
}

// DebuggerTable returns the debugger table for this configuration.
func (w *Workflow) DebuggerTable() *debugger.Table {
	return debugger.NewTable(w.cfg.Debuggers)
}

// ResolveDebugger looks up a debugger entry and builds its command line for
// the given executable.
func (w *Workflow) ResolveDebugger(ctx context.Context, label string, executable string, currentFile string) (debugger.Entry, string, error) {
	entry, err := w.DebuggerTable().Resolve(label)
	if err != nil {
		return debugger.Entry{}, "", err
	}

	values, err := w.Values(ctx, currentFile)
	if err != nil {
		return debugger.Entry{}, "", err
	}

	return entry, entry.CommandLine(executable, values), nil
}
