package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/launch/errors"
)

// Config file names probed in each directory, in order.
var configFileNames = []string{"launch.yml", "launch.yaml", "launch.toml"}

// FindConfigFile walks up from dir looking for a launch config file.
// It returns an empty string when none is found.
func FindConfigFile(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadDefault loads the nearest config file above the working directory.
// A missing config file is not an error; it yields an empty Config, since
// every field has a usable zero value.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return &Config{}, nil
	}

	path := FindConfigFile(cwd)
	if path == "" {
		return &Config{}, nil
	}
	return Load(path)
}

// Load reads and decodes a config file. The format is chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("failed to read %s", path))
	}

	if strings.HasSuffix(path, ".toml") {
		return LoadFromBytes(data, FormatTOML)
	}
	return LoadFromBytes(data, FormatYAML)
}

// Format selects the config file encoding.
type Format int

const (
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML decodes with pelletier/go-toml.
	FormatTOML
)

// LoadFromBytes decodes config data. Unknown top-level keys are preserved in
// Extensions rather than rejected, so other tools can share the file.
func LoadFromBytes(data []byte, format Format) (*Config, error) {
	raw := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML config")
		}
	}

	cfg := &Config{}
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     cfg,
		Metadata:   &md,
		TagName:    "yaml",
		DecodeHook: buildDirSpecHook,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode config")
	}

	// Unused keys are extension sections owned by other tools.
	for _, key := range md.Unused {
		if strings.Contains(key, ".") {
			continue
		}
		if cfg.Extensions == nil {
			cfg.Extensions = make(map[string]interface{})
		}
		cfg.Extensions[key] = raw[key]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UnmarshalExtension decodes an extension section into out.
func (c *Config) UnmarshalExtension(key string, out interface{}) error {
	section, ok := c.Extensions[key]
	if !ok {
		return errors.ConfigInvalid(fmt.Sprintf("no '%s' section in config", key))
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "yaml",
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to build extension decoder")
	}
	if err := decoder.Decode(section); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, fmt.Sprintf("failed to decode '%s' section", key))
	}
	return nil
}

// buildDirSpecHook lets build_dir be written as a bare string, shorthand for
// a path-only spec.
func buildDirSpecHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(BuildDirSpec{}) {
		return data, nil
	}
	if s, ok := data.(string); ok {
		return BuildDirSpec{Path: s}, nil
	}
	return data, nil
}
