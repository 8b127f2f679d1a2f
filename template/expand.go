// Package template expands placeholder tokens in command strings into
// concrete path fragments.
//
// The token set is fixed:
//
//	%a  absolute path of the current file
//	%f  file name
//	%n  file name without extension
//	%e  extension
//	%d  directory of the current file (trailing separator)
//	%p  project root
//	%b  resolved build directory
//
// Replacement is literal and case-sensitive; replacement text is never
// re-scanned, unknown %x sequences pass through untouched, and there is no
// escape syntax for a literal token.
package template

import (
	"strings"

	"github.com/grovetools/launch/pathinfo"
)

// Values supplies the replacement text for each token. Absent values expand
// to empty strings.
type Values struct {
	Path        pathinfo.Info
	ProjectRoot string
	BuildDir    string
}

// Expand substitutes every token in tmpl.
func Expand(tmpl string, v Values) string {
	replacer := strings.NewReplacer(
		"%a", v.Path.AbsolutePath,
		"%f", v.Path.FileName,
		"%n", v.Path.Stem,
		"%e", v.Path.Extension,
		"%d", v.Path.Directory,
		"%p", v.ProjectRoot,
		"%b", v.BuildDir,
	)
	return replacer.Replace(tmpl)
}

// StripComment removes a trailing comment annotation from a raw command
// string: everything from the first unescaped '#' to the end, with the
// remainder trimmed of surrounding whitespace. Configuration entries use the
// comment to disambiguate two entries that invoke the same tool.
func StripComment(s string) string {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == '#':
			return strings.TrimSpace(s[:i])
		}
	}
	return strings.TrimSpace(s)
}
