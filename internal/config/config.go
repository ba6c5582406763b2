// Package config loads the escape CLI configuration.
//
// Configuration comes from a single YAML file named by the --config flag or,
// when the flag is empty, the ESCAPE_CONFIG environment variable. There is
// no discovery: without either, Default is used. Command-line flags are
// applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "ESCAPE_CONFIG"

// Output formats understood by the CLI.
var Outputs = []string{"text", "json", "yaml", "cbor"}

// Log levels understood by the CLI.
var LogLevels = []string{"info", "debug"}

// Config is the CLI configuration.
type Config struct {
	// Output selects the result encoding: text, json, yaml or cbor.
	Output string `yaml:"output"`

	// Color enables ANSI colors in text output.
	Color bool `yaml:"color"`

	// LogLevel is "info" or "debug".
	LogLevel string `yaml:"log_level"`

	// Route makes "plan" print the full node walk.
	Route bool `yaml:"route"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:   "text",
		Color:    true,
		LogLevel: "info",
	}
}

// Load reads the file at path, falling back to $ESCAPE_CONFIG when path is
// empty. With neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads path over Default and validates the result. Unknown keys
// are an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(Outputs, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of: %v", Outputs))
	}
	if !slices.Contains(LogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", LogLevels))
	}

	return errors.Join(errs...)
}
