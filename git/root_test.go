package git

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/launch/testutil"
)

func TestCLIRootFinder(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	testutil.InitGitRepo(t, dir)

	sub := filepath.Join(dir, "src")
	testutil.WriteFile(t, sub, "main.c")

	root := NewCLIRootFinder().Root(context.Background(), sub)
	require.NotEmpty(t, root)

	// Compare through EvalSymlinks; on some systems TempDir is itself a
	// symlinked location.
	wantReal, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, wantReal, gotReal)
}

func TestCLIRootFinderOutsideRepo(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	root := NewCLIRootFinder().Root(context.Background(), dir)
	assert.Empty(t, root)
}

func TestStaticRoot(t *testing.T) {
	assert.Equal(t, "/proj", StaticRoot("/proj").Root(context.Background(), "/anywhere"))
}
