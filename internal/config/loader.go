package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "KEYLINE_"

// Load builds a Config from the defaults, the TOML file at path and the
// environment, then validates it. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := NewEnvLoader(EnvPrefix).Apply(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the TOML file at path over c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return c.decode(path, data)
}

// LoadFromReader decodes TOML from r over c.
func (c *Config) LoadFromReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return c.decode("<reader>", data)
}

func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var strict *toml.StrictMissingError
		var derr *toml.DecodeError
		switch {
		case errors.As(err, &strict) && len(strict.Errors) > 0:
			perr.Line, perr.Column = strict.Errors[0].Position()
			perr.Message = "unknown setting " + keyPath(strict.Errors[0].Key())
		case errors.As(err, &derr):
			perr.Line, perr.Column = derr.Position()
		}
		return perr
	}
	if c.Keys == nil {
		c.Keys = map[string]string{}
	}
	return nil
}

func keyPath(k toml.Key) string {
	var b bytes.Buffer
	for i, part := range k {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
