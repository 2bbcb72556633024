// Package config holds the tool configuration, optionally loaded from a
// whengen.yaml file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default file names and settings.
const (
	DefaultFileName = "whengen.yaml"
	DefaultKeyword  = "when"
	DefaultSuffix   = ".whengo"
	DefaultHeader   = "Code generated by whengen. DO NOT EDIT."
	// DefaultMaxPasses bounds nested-expansion passes per file.
	DefaultMaxPasses = 16
)

// Config controls how input files are found and rewritten.
type Config struct {
	// Keyword is the identifier that introduces a clause block.
	Keyword string `yaml:"keyword"`
	// InputSuffix is the extension of input files.
	InputSuffix string `yaml:"input_suffix"`
	// Header is the generated-code header written atop each output file.
	Header string `yaml:"header"`
	// MaxPasses caps how many rewrite passes a file may take; nested blocks
	// consume one pass per nesting level.
	MaxPasses int `yaml:"max_passes"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Keyword:     DefaultKeyword,
		InputSuffix: DefaultSuffix,
		Header:      DefaultHeader,
		MaxPasses:   DefaultMaxPasses,
	}
}

// LoadFile loads a YAML config from path and fills in defaults for anything
// left unset.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and applies defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Keyword == "" {
		cfg.Keyword = DefaultKeyword
	}

	if cfg.InputSuffix == "" {
		cfg.InputSuffix = DefaultSuffix
	}

	if cfg.Header == "" {
		cfg.Header = DefaultHeader
	}

	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = DefaultMaxPasses
	}
}

// IsInput reports whether path is an input file under this configuration.
func (c Config) IsInput(path string) bool {
	return strings.HasSuffix(path, c.InputSuffix)
}

// OutputName returns the generated file name for an input path: the input
// suffix is replaced with .go.
func (c Config) OutputName(path string) string {
	return strings.TrimSuffix(path, c.InputSuffix) + ".go"
}
