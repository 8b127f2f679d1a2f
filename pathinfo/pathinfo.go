package pathinfo

import (
	"path/filepath"
	"strings"
)

// Info holds the atomic path facts derived from the currently active file.
// All fields are empty strings when no file backs the current context.
type Info struct {
	// AbsolutePath is the file path exactly as given.
	AbsolutePath string
	// FileName is the final path segment.
	FileName string
	// Stem is FileName without its extension suffix.
	Stem string
	// Extension is the text after the last '.' in FileName, without the dot.
	Extension string
	// Directory is every segment except the last, with a trailing separator.
	Directory string
}

// From derives path facts from a file path. It is a pure function: an empty
// input yields an all-empty Info rather than an error.
func From(path string) Info {
	if path == "" {
		return Info{}
	}

	name := filepath.Base(path)

	// The stem drops the "."+extension suffix, but drops nothing when the
	// extension is empty (no dot, or a bare trailing dot).
	var ext, stem string
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		ext = name[idx+1:]
		stem = name[:idx]
	} else {
		stem = name
	}

	dir := filepath.Dir(path)
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}

	return Info{
		AbsolutePath: path,
		FileName:     name,
		Stem:         stem,
		Extension:    ext,
		Directory:    dir,
	}
}
