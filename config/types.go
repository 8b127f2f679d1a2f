package config

import (
	"path/filepath"

	"github.com/grovetools/launch/errors"
	"github.com/grovetools/launch/logging"
)

// BuildDirKind classifies how a configured build directory is specified.
type BuildDirKind int

const (
	// BuildDirUnset means no override is configured.
	BuildDirUnset BuildDirKind = iota
	// BuildDirAbsolute is an absolute path used as-is.
	BuildDirAbsolute
	// BuildDirRelative is a path joined to the project root (or, failing
	// that, the current file's directory).
	BuildDirRelative
	// BuildDirExpression is an expression evaluated against the current
	// environment; its result is treated as a path.
	BuildDirExpression
)

// BuildDirSpec is the project-local build directory override. Exactly one of
// Path or Expression may be set; an empty spec means no override.
//
// In launch.yml it can be written either as a plain string:
//
//	build_dir: build/debug
//
// or as a mapping:
//
//	build_dir:
//	  expression: '"${root}/build"'
type BuildDirSpec struct {
	Path       string `yaml:"path,omitempty" toml:"path,omitempty"`
	Expression string `yaml:"expression,omitempty" toml:"expression,omitempty"`
}

// Kind reports how the spec should be resolved.
func (s *BuildDirSpec) Kind() BuildDirKind {
	switch {
	case s == nil:
		return BuildDirUnset
	case s.Expression != "":
		return BuildDirExpression
	case s.Path == "":
		return BuildDirUnset
	case filepath.IsAbs(s.Path):
		return BuildDirAbsolute
	default:
		return BuildDirRelative
	}
}

// Validate checks internal consistency of the spec.
func (s *BuildDirSpec) Validate() error {
	if s != nil && s.Path != "" && s.Expression != "" {
		return errors.ConfigInvalid("build_dir may set either 'path' or 'expression', not both")
	}
	return nil
}

// DebuggerConfig is one per-project debugger table entry. Command is the raw
// invocation pattern and may carry a trailing '#' comment used only to
// disambiguate entries in selection UIs.
type DebuggerConfig struct {
	Label   string `yaml:"label" toml:"label"`
	Command string `yaml:"command" toml:"command"`
	Kind    string `yaml:"kind,omitempty" toml:"kind,omitempty"`
}

// Config is the root of launch.yml / launch.toml. All fields are read-only
// inputs to a workflow run; nothing in this package is written back to disk.
type Config struct {
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// BuildDir is the project-local build directory override.
	BuildDir *BuildDirSpec `yaml:"build_dir,omitempty" toml:"build_dir,omitempty"`

	// Debuggers are per-project additions to the built-in debugger table.
	Debuggers []DebuggerConfig `yaml:"debuggers,omitempty" toml:"debuggers,omitempty"`

	// Presets are global command templates offered for every project.
	Presets []string `yaml:"presets,omitempty" toml:"presets,omitempty"`

	// Commands are per-project command templates, offered before presets.
	Commands []string `yaml:"commands,omitempty" toml:"commands,omitempty"`

	Logging logging.Config `yaml:"logging,omitempty" toml:"logging,omitempty"`

	// Extensions holds config sections owned by other tools; they are
	// decoded on demand with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:"-" toml:"-"`
}

// Templates returns the command templates in offer order: per-project
// commands first, then global presets.
func (c *Config) Templates() []string {
	out := make([]string, 0, len(c.Commands)+len(c.Presets))
	out = append(out, c.Commands...)
	out = append(out, c.Presets...)
	return out
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.BuildDir.Validate(); err != nil {
		return err
	}
	for _, d := range c.Debuggers {
		if d.Label == "" {
			return errors.ConfigInvalid("debugger entry is missing a label")
		}
		if d.Command == "" {
			return errors.ConfigInvalid("debugger '" + d.Label + "' is missing a command")
		}
	}
	return nil
}
