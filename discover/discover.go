package discover

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/launch/logging"
)

// Executables recursively lists regular files with an execute bit under dir,
// as absolute paths. An empty dir is the expected "nothing to search" state
// and yields an empty result. Unreadable subtrees are skipped, not fatal;
// partial results are still useful.
func Executables(dir string) []string {
	if dir == "" {
		return nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}

	w := &walker{
		visited: make(map[string]bool),
		log:     logging.NewLogger("discover"),
	}
	w.walk(abs)
	return w.found
}

type walker struct {
	visited map[string]bool
	found   []string
	log     *logrus.Entry
}

func (w *walker) walk(dir string) {
	// Track directories by their symlink-resolved identity so a cycle of
	// links cannot recurse forever.
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		real = dir
	}
	if w.visited[real] {
		return
	}
	w.visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.WithField("dir", dir).WithError(err).Debug("skipping unreadable directory")
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat (not Lstat) so symlinked executables and directories are
		// seen through the link.
		info, err := os.Stat(path)
		if err != nil {
			w.log.WithField("path", path).WithError(err).Debug("skipping unreadable entry")
			continue
		}

		if info.IsDir() {
			w.walk(path)
			continue
		}

		if info.Mode().IsRegular() && info.Mode()&0111 != 0 {
			w.found = append(w.found, path)
		}
	}
}
