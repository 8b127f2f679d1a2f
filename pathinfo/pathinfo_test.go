package pathinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Info
	}{
		{
			name: "absolute path with extension",
			path: "/usr/local/bin/netscape.bin",
			want: Info{
				AbsolutePath: "/usr/local/bin/netscape.bin",
				FileName:     "netscape.bin",
				Stem:         "netscape",
				Extension:    "bin",
				Directory:    "/usr/local/bin/",
			},
		},
		{
			name: "no extension",
			path: "/home/dev/Makefile",
			want: Info{
				AbsolutePath: "/home/dev/Makefile",
				FileName:     "Makefile",
				Stem:         "Makefile",
				Extension:    "",
				Directory:    "/home/dev/",
			},
		},
		{
			name: "multiple dots",
			path: "/tmp/archive.tar.gz",
			want: Info{
				AbsolutePath: "/tmp/archive.tar.gz",
				FileName:     "archive.tar.gz",
				Stem:         "archive.tar",
				Extension:    "gz",
				Directory:    "/tmp/",
			},
		},
		{
			name: "trailing dot has no extension",
			path: "/opt/x.",
			want: Info{
				AbsolutePath: "/opt/x.",
				FileName:     "x.",
				Stem:         "x.",
				Extension:    "",
				Directory:    "/opt/",
			},
		},
		{
			name: "empty input",
			path: "",
			want: Info{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, From(tt.path))
		})
	}
}

// The stem/extension split must reassemble into the original file name.
func TestFromRoundTrip(t *testing.T) {
	paths := []string{
		"/usr/local/bin/netscape.bin",
		"/home/dev/Makefile",
		"/tmp/archive.tar.gz",
		"/srv/a.b.c.d",
		"/opt/x.",
	}

	for _, p := range paths {
		info := From(p)
		if info.Extension != "" {
			assert.Equal(t, info.FileName, info.Stem+"."+info.Extension, "path %s", p)
		} else {
			assert.Equal(t, info.FileName, info.Stem, "path %s", p)
		}
	}
}

func TestFromDirectoryHasTrailingSeparator(t *testing.T) {
	info := From("/a/b/c.txt")
	assert.Equal(t, "/a/b/", info.Directory)
	assert.Equal(t, info.AbsolutePath, info.Directory+info.FileName)
}
