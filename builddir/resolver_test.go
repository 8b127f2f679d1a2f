package builddir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/launch/config"
	"github.com/grovetools/launch/errors"
)

func TestResolveAbsoluteOverride(t *testing.T) {
	dir := t.TempDir()
	spec := &config.BuildDirSpec{Path: dir}

	// The override wins regardless of project root or current file.
	got, err := NewResolver(spec).Resolve(Context{
		CurrentFile: "/somewhere/else/main.c",
		ProjectRoot: "/somewhere/else",
	})
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestResolveAbsoluteOverrideMissingPath(t *testing.T) {
	spec := &config.BuildDirSpec{Path: filepath.Join(t.TempDir(), "missing")}

	_, err := NewResolver(spec).Resolve(Context{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}

func TestResolveRelativeOverrideJoinsProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build", "debug"), 0755))

	spec := &config.BuildDirSpec{Path: filepath.Join("build", "debug")}
	got, err := NewResolver(spec).Resolve(Context{ProjectRoot: root})
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(filepath.Join(root, "build", "debug"))
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestResolveRelativeOverrideFallsBackToFileDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "out"), 0755))

	spec := &config.BuildDirSpec{Path: "out"}
	got, err := NewResolver(spec).Resolve(Context{
		CurrentFile: filepath.Join(dir, "main.c"),
	})
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestResolveRelativeOverrideMissingPath(t *testing.T) {
	root := t.TempDir()
	spec := &config.BuildDirSpec{Path: "no-such-dir"}

	_, err := NewResolver(spec).Resolve(Context{ProjectRoot: root})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}

func TestResolveRelativeOverrideWithoutAnchorFallsThrough(t *testing.T) {
	// A relative override with neither project root nor current file
	// yields nothing from the override layer; with no other layers
	// available either, the result is absent, not an error.
	spec := &config.BuildDirSpec{Path: "build"}

	got, err := NewResolver(spec).Resolve(Context{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveUnsetUsesProjectRoot(t *testing.T) {
	got, err := NewResolver(nil).Resolve(Context{
		CurrentFile: "/proj/src/main.c",
		ProjectRoot: "/proj",
	})
	require.NoError(t, err)
	assert.Equal(t, "/proj", got)
}

func TestResolveUnsetFallsBackToFileDir(t *testing.T) {
	got, err := NewResolver(nil).Resolve(Context{
		CurrentFile: "/scratch/note.sh",
	})
	require.NoError(t, err)
	assert.Equal(t, "/scratch", got)
}

func TestResolveNothingAvailable(t *testing.T) {
	got, err := NewResolver(nil).Resolve(Context{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolveExpressionOverride(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "target"), 0755))

	spec := &config.BuildDirSpec{Expression: `"${root}/target"`}
	got, err := NewResolver(spec).Resolve(Context{ProjectRoot: root})
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(filepath.Join(root, "target"))
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestResolveExpressionOverrideEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LAUNCH_TEST_BUILD_DIR", dir)

	spec := &config.BuildDirSpec{Expression: `env.LAUNCH_TEST_BUILD_DIR`}
	got, err := NewResolver(spec).Resolve(Context{})
	require.NoError(t, err)

	canonical, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, canonical, got)
}

func TestResolveExpressionInvalid(t *testing.T) {
	spec := &config.BuildDirSpec{Expression: `nosuchvar + 1`}

	_, err := NewResolver(spec).Resolve(Context{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExpressionInvalid))
}
