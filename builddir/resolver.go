package builddir

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/launch/config"
	"github.com/grovetools/launch/errors"
	"github.com/grovetools/launch/logging"
	"github.com/grovetools/launch/util/pathutil"
)

// Context carries the per-invocation project facts the resolver works from.
// It is recomputed for every workflow run and never cached.
type Context struct {
	// CurrentFile is the absolute path of the active file, or "" when no
	// file backs the current context.
	CurrentFile string
	// ProjectRoot is the externally detected project root, or "" when
	// unknown.
	ProjectRoot string
}

// fileDir returns the directory of the current file, or "".
func (c Context) fileDir() string {
	if c.CurrentFile == "" {
		return ""
	}
	return filepath.Dir(c.CurrentFile)
}

// A strategy produces a candidate build directory for a context. An empty
// result means "nothing from this layer, try the next one"; only errors stop
// the chain.
type strategy func(ctx Context) (string, error)

// Resolver determines the single build directory to search. Layers are
// tried in order: explicit override, project root, current file's
// directory. The first non-empty result wins.
type Resolver struct {
	spec *config.BuildDirSpec
	log  *logrus.Entry
}

// NewResolver creates a Resolver for a configured override spec. A nil spec
// means no override is configured.
func NewResolver(spec *config.BuildDirSpec) *Resolver {
	return &Resolver{
		spec: spec,
		log:  logging.NewLogger("builddir"),
	}
}

// Resolve returns the build directory for ctx, or "" when no layer yields
// one. An override that names a nonexistent path fails with INVALID_PATH;
// that error aborts only the current workflow.
func (r *Resolver) Resolve(ctx Context) (string, error) {
	strategies := []strategy{
		r.fromOverride,
		r.fromProjectRoot,
		r.fromFileDirectory,
	}

	for _, s := range strategies {
		dir, err := s(ctx)
		if err != nil {
			return "", err
		}
		if dir != "" {
			r.log.WithField("dir", dir).Debug("resolved build directory")
			return dir, nil
		}
	}

	r.log.Debug("no build directory resolved")
	return "", nil
}

// fromOverride applies the configured BuildDirSpec, if any. The candidate
// must exist on the filesystem; a candidate that resolves to nothing at all
// is not an error and falls through to the next layer.
func (r *Resolver) fromOverride(ctx Context) (string, error) {
	var candidate string

	switch r.spec.Kind() {
	case config.BuildDirUnset:
		return "", nil

	case config.BuildDirAbsolute:
		expanded, err := pathutil.Expand(r.spec.Path)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrCodeInvalidPath, "failed to expand build directory path")
		}
		candidate = expanded

	case config.BuildDirRelative:
		expanded, err := pathutil.Expand(r.spec.Path)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrCodeInvalidPath, "failed to expand build directory path")
		}
		candidate = anchor(expanded, ctx)

	case config.BuildDirExpression:
		result, err := EvalExpression(r.spec.Expression, ctx)
		if err != nil {
			return "", err
		}
		candidate = anchor(result, ctx)
	}

	if candidate == "" {
		return "", nil
	}

	if _, err := os.Stat(candidate); err != nil {
		return "", errors.InvalidPath(candidate)
	}

	return pathutil.Canonicalize(candidate)
}

// fromProjectRoot returns the project root exactly as detected.
func (r *Resolver) fromProjectRoot(ctx Context) (string, error) {
	return ctx.ProjectRoot, nil
}

// fromFileDirectory falls back to searching next to the current file, which
// keeps scratch contexts without any project usable.
func (r *Resolver) fromFileDirectory(ctx Context) (string, error) {
	return ctx.fileDir(), nil
}

// anchor joins a relative path to the project root, or failing that to the
// current file's directory. With neither available the result is absent.
func anchor(path string, ctx Context) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if ctx.ProjectRoot != "" {
		return filepath.Join(ctx.ProjectRoot, path)
	}
	if dir := ctx.fileDir(); dir != "" {
		return filepath.Join(dir, path)
	}
	return ""
}
