package counter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration file:
//
//	locale: zh-TW
//	labels:
//	  completed: done!
type Config struct {
	Locale string `yaml:"locale"`
	Labels Labels `yaml:"labels"`
}

// LoadConfig reads and parses the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig parses a YAML configuration. Unknown fields are rejected; an empty document is a zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Resolve returns the labels to use. A non-empty locale overrides the
// configured one; the configured labels override the locale's.
func (c Config) Resolve(locale string) (Labels, error) {
	if locale == "" {
		locale = c.Locale
	}

	base, err := LabelsFor(locale)
	if err != nil {
		return Labels{}, err
	}

	return base.Merge(c.Labels), nil
}
