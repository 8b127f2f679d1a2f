package pathutil

import (
	"path/filepath"
)

// Canonicalize makes a path absolute and resolves symbolic links.
// If symlink evaluation fails (e.g., the path does not exist yet), it
// falls back to the absolute path.
func Canonicalize(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	canonicalPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return absPath, nil
	}
	return canonicalPath, nil
}
