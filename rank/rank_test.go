package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBySimilarity(t *testing.T) {
	candidates := BySimilarity("sh", []string{"/bin/sh", "/bin/shell", "/bin/bash"})

	require.Len(t, candidates, 3)
	// "sh" matches exactly, "bash" is two deletions away, "shell" three
	// insertions.
	assert.Equal(t, Candidate{Path: "/bin/sh", Distance: 0}, candidates[0])
	assert.Equal(t, Candidate{Path: "/bin/bash", Distance: 2}, candidates[1])
	assert.Equal(t, Candidate{Path: "/bin/shell", Distance: 3}, candidates[2])
}

func TestBySimilarityStableOnTies(t *testing.T) {
	// All basenames are equidistant from the reference, so the output
	// order must equal the input order.
	paths := []string{"/x/aa", "/x/bb", "/x/cc", "/x/dd"}
	candidates := BySimilarity("zz", paths)

	require.Len(t, candidates, 4)
	for i, c := range candidates {
		assert.Equal(t, paths[i], c.Path)
		assert.Equal(t, 2, c.Distance)
	}
}

func TestBySimilarityIgnoresDirectory(t *testing.T) {
	// Only basenames are compared; deeply nested paths rank the same as
	// flat ones.
	candidates := BySimilarity("tool", []string{"/very/long/prefix/tool", "/t/tool2"})

	assert.Equal(t, 0, candidates[0].Distance)
	assert.Equal(t, "/very/long/prefix/tool", candidates[0].Path)
	assert.Equal(t, 1, candidates[1].Distance)
}

func TestBySimilarityCaseSensitive(t *testing.T) {
	candidates := BySimilarity("Main", []string{"/b/main"})
	assert.Equal(t, 1, candidates[0].Distance)
}

func TestBySimilarityEmptyInputs(t *testing.T) {
	assert.Empty(t, BySimilarity("ref", nil))

	// An empty reference reduces every distance to the basename length.
	candidates := BySimilarity("", []string{"/b/abc", "/b/a"})
	require.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].Distance)
	assert.Equal(t, "/b/a", candidates[0].Path)
	assert.Equal(t, 3, candidates[1].Distance)
}
