package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-pacifictime/internal/config"
)

// formatValue is the --format flag.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(s string) error {
	s = strings.ToLower(s)
	for _, v := range config.Formats {
		if s == v {
			*f = formatValue(s)
			return nil
		}
	}
	return errors.Errorf("must be one of %s", strings.Join(config.Formats, ", "))
}

func (f *formatValue) Type() string {
	return "format"
}

// write encodes v to w in format. The text format is rendered by text.
func write(w io.Writer, format formatValue, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case "toml":
		return errors.Wrap(toml.NewEncoder(w).Encode(v), "encode toml")
	}
	return text(w)
}
