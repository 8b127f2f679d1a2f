package rank

import (
	"path/filepath"
	"sort"

	"github.com/agext/levenshtein"
)

// Candidate is a discovered executable paired with its similarity to the
// reference file name. Lower distances are better matches.
type Candidate struct {
	Path     string `json:"path"`
	Distance int    `json:"distance"`
}

// BySimilarity orders paths by the edit distance between each path's
// basename and reference. Comparison is case-sensitive and ignores the
// directory component. The sort is stable: candidates at equal distance keep
// their discovery order.
func BySimilarity(reference string, paths []string) []Candidate {
	candidates := make([]Candidate, len(paths))
	for i, path := range paths {
		candidates[i] = Candidate{
			Path:     path,
			Distance: levenshtein.Distance(filepath.Base(path), reference, nil),
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	return candidates
}
