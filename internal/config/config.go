// Package config loads reqline CLI settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the reqline configuration
type Config struct {
	Format  string `yaml:"format,omitempty"`  // text, json or yaml
	NoColor *bool  `yaml:"noColor,omitempty"` // disable colored text output
	Trace   *bool  `yaml:"trace,omitempty"`   // print the parser states visited
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Format:  FormatText,
		NoColor: BoolPtr(false),
		Trace:   BoolPtr(false),
	}
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetTrace returns the trace setting, defaulting to false
func (c *Config) GetTrace() bool {
	return getBool(c.Trace, false)
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid format %q (expected text, json or yaml)", c.Format)
	}
}

// ConfigFilenames contains the possible config file names, in search order
var ConfigFilenames = []string{
	".reqline.yaml",
	".reqline.yml",
	"reqline.yaml",
}

// LoadConfig loads configuration from the specified path or searches the
// current directory for a config file
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory.
// Defaults are returned if none exists.
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
