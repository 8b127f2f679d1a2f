package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grovetools/launch/pathinfo"
)

func netscapeValues() Values {
	return Values{
		Path:        pathinfo.From("/usr/local/bin/netscape.bin"),
		ProjectRoot: "/home/dev/project",
		BuildDir:    "/home/dev/project/build",
	}
}

func TestExpand(t *testing.T) {
	v := netscapeValues()

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"stem and extension", "%n.%e", "netscape.bin"},
		{"directory and file name", "%d%f", "/usr/local/bin/netscape.bin"},
		{"absolute path", "%a", "/usr/local/bin/netscape.bin"},
		{"project root", "make -C %p", "make -C /home/dev/project"},
		{"build directory", "%b/out", "/home/dev/project/build/out"},
		{"no tokens", "make all", "make all"},
		{"uppercase is not a token", "%A %F", "%A %F"},
		{"unknown token passes through", "%x %z", "%x %z"},
		{"repeated tokens", "%f %f", "netscape.bin netscape.bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(tt.template, v))
		})
	}
}

func TestExpandEmptyValues(t *testing.T) {
	// No backing file, no project, no build dir: every token expands to "".
	got := Expand("run %a %f %n %e %d %p %b", Values{})
	assert.Equal(t, "run       ", got)
}

// Expanding an already-expanded template must be a no-op: replacement text
// is never re-scanned and expanded output contains no tokens.
func TestExpandIdempotent(t *testing.T) {
	v := netscapeValues()

	once := Expand("gdb %b/%n %f", v)
	twice := Expand(once, v)
	assert.Equal(t, once, twice)
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing comment", "gdb #realgud", "gdb"},
		{"no comment", "gdb", "gdb"},
		{"comment only", "#note", ""},
		{"escaped hash is kept", `echo \#literal`, `echo \#literal`},
		{"escaped then real hash", `echo \# #note`, `echo \#`},
		{"whitespace trimmed", "  dlv exec  # delve ", "dlv exec"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComment(tt.input))
		})
	}
}
