// Package config loads pacifictime settings from a TOML or YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings that can be given in a config file. Command line
// flags take precedence over it.
type Config struct {
	Format   string `toml:"format" yaml:"format"`
	LogLevel string `toml:"loglevel" yaml:"loglevel"`
}

// Output formats.
var Formats = []string{"text", "json", "yaml", "toml"}

// Log levels.
var LogLevels = []string{"trace", "debug", "info", "warning", "error"}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Format:   "text",
		LogLevel: "warning",
	}
}

// Kind is the encoding of a config file.
type Kind int

const (
	KindTOML Kind = iota
	KindYAML
)

// KindOf returns the encoding of a config file based on its extension.
// Files without a known extension are read as TOML.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return KindYAML
	}
	return KindTOML
}

// Load reads the config file at path. Unset fields keep their default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(b, KindOf(path))
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes b as kind on top of the defaults and validates the result.
func Parse(b []byte, kind Kind) (Config, error) {
	cfg := Default()
	switch kind {
	case KindTOML:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse toml")
		}
	case KindYAML:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "parse yaml")
		}
	default:
		return Config{}, errors.Errorf("unknown config kind %d", kind)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a known value.
func (c Config) Validate() error {
	if !contains(Formats, c.Format) {
		return errors.Errorf("invalid format %q, want one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if !contains(LogLevels, c.LogLevel) {
		return errors.Errorf("invalid loglevel %q, want one of %s", c.LogLevel, strings.Join(LogLevels, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
