package debugger

import (
	"context"
	"strings"

	"github.com/grovetools/launch/command"
	"github.com/grovetools/launch/config"
	"github.com/grovetools/launch/errors"
	"github.com/grovetools/launch/template"
)

// Kind selects the launching capability for an entry. The set is closed:
// lookups resolve to one of these cases, never to a dynamically named
// routine.
type Kind string

const (
	// KindCommand runs the expanded pattern as a plain foreground command.
	KindCommand Kind = "command"
	// KindGDB launches a gdb-style debugger that takes the executable as
	// its final argument.
	KindGDB Kind = "gdb"
	// KindDLV launches Delve, which debugs a compiled binary via `exec`.
	KindDLV Kind = "dlv"
	// KindLLDB launches lldb.
	KindLLDB Kind = "lldb"
)

// Entry pairs a human-readable label with a raw invocation pattern and a
// launching capability. Pattern may carry a trailing '#' comment; it is
// stripped before the pattern reaches a command line.
type Entry struct {
	Label   string `json:"label"`
	Pattern string `json:"pattern"`
	Kind    Kind   `json:"kind"`
}

// CommandLine builds the full invocation for a chosen executable: the
// comment-stripped, token-expanded pattern with the executable appended.
func (e Entry) CommandLine(executable string, v template.Values) string {
	line := template.Expand(template.StripComment(e.Pattern), v)
	if executable != "" {
		line += " " + executable
	}
	return line
}

// Launch runs the entry's command line for an executable through the given
// runner. The switch is exhaustive over the closed Kind set.
func (e Entry) Launch(ctx context.Context, runner *command.Runner, executable string, dir string, v template.Values) error {
	switch e.Kind {
	case KindCommand, KindGDB, KindDLV, KindLLDB, "":
		return runner.RunShell(ctx, e.CommandLine(executable, v), dir)
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown debugger kind: "+string(e.Kind))
	}
}

// Table is the read-only debugger table for a workflow run: built-in
// defaults overlaid with per-project configuration.
type Table struct {
	entries []Entry
	byLabel map[string]int
}

// defaults are the built-in entries, available without any configuration.
func defaults() []Entry {
	return []Entry{
		{Label: "gdb", Pattern: "gdb", Kind: KindGDB},
		{Label: "dlv", Pattern: "dlv exec", Kind: KindDLV},
		{Label: "lldb", Pattern: "lldb", Kind: KindLLDB},
	}
}

// NewTable builds the table from per-project entries merged over the
// built-in defaults. A configured entry with a default's label replaces it.
func NewTable(cfgs []config.DebuggerConfig) *Table {
	t := &Table{byLabel: make(map[string]int)}

	for _, e := range defaults() {
		t.add(e)
	}
	for _, c := range cfgs {
		t.add(Entry{
			Label:   c.Label,
			Pattern: c.Command,
			Kind:    Kind(strings.ToLower(c.Kind)),
		})
	}

	return t
}

func (t *Table) add(e Entry) {
	if idx, ok := t.byLabel[e.Label]; ok {
		t.entries[idx] = e
		return
	}
	t.byLabel[e.Label] = len(t.entries)
	t.entries = append(t.entries, e)
}

// Resolve returns the entry for a label.
func (t *Table) Resolve(label string) (Entry, error) {
	idx, ok := t.byLabel[label]
	if !ok {
		return Entry{}, errors.DebuggerNotFound(label)
	}
	return t.entries[idx], nil
}

// Entries returns all entries in table order: defaults first, then
// configured additions.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
