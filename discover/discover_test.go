package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/launch/testutil"
)

func TestExecutables(t *testing.T) {
	dir := t.TempDir()

	a := testutil.WriteExecutable(t, dir, "a")
	testutil.WriteFile(t, dir, "b")
	d := testutil.WriteExecutable(t, dir, filepath.Join("c", "d"))

	found := Executables(dir)
	assert.ElementsMatch(t, []string{a, d}, found)
}

func TestExecutablesEmptyDir(t *testing.T) {
	assert.Empty(t, Executables(""))
	assert.Empty(t, Executables(t.TempDir()))
}

func TestExecutablesSkipsUnreadableSubtree(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	visible := testutil.WriteExecutable(t, dir, "visible")
	hidden := filepath.Join(dir, "locked")
	testutil.WriteExecutable(t, hidden, "hidden")

	require.NoError(t, os.Chmod(hidden, 0000))
	t.Cleanup(func() { _ = os.Chmod(hidden, 0755) })

	// Partial results, no error: the unreadable subtree is skipped.
	found := Executables(dir)
	assert.Equal(t, []string{visible}, found)
}

func TestExecutablesSymlinkCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	exe := testutil.WriteExecutable(t, sub, "tool")

	// sub/loop -> dir forms a cycle; the walk must still terminate.
	require.NoError(t, os.Symlink(dir, filepath.Join(sub, "loop")))

	found := Executables(dir)
	assert.Contains(t, found, exe)
}

func TestExecutablesFollowsFileSymlink(t *testing.T) {
	dir := t.TempDir()
	target := testutil.WriteExecutable(t, dir, filepath.Join("real", "bin"))

	linkDir := filepath.Join(dir, "links")
	require.NoError(t, os.MkdirAll(linkDir, 0755))
	link := filepath.Join(linkDir, "bin-link")
	require.NoError(t, os.Symlink(target, link))

	found := Executables(dir)
	assert.Contains(t, found, link)
	assert.Contains(t, found, target)
}
