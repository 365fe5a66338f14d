package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a check that can be saved in a configuration file
type Config struct {
	// Source is the type of release provider: "auto", "github", "gitea", "gitlab" or "http"
	Source string `toml:"source" yaml:"source"`
	// Repository is a slug or the URL of the repository
	Repository string `toml:"repository" yaml:"repository"`
	// Version is the current version of the application
	Version string `toml:"version" yaml:"version"`
	// UserAgent identifies the application to the release provider
	UserAgent string `toml:"user-agent" yaml:"user-agent"`
	// BaseURL of the release provider, when it cannot be guessed from the repository
	BaseURL string `toml:"base-url" yaml:"base-url"`
	// Manifest is the name of the file loaded by the "http" source
	Manifest string `toml:"manifest" yaml:"manifest"`
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() Config {
	return Config{
		Source: "auto",
	}
}

// LoadConfig reads a configuration file: ".toml" files are decoded as TOML, ".yaml" and ".yml" files as YAML.
// The values found in the file are applied over the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading file: %w", err)
	}

	var override Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &override); err != nil {
			return cfg, fmt.Errorf("parsing TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return cfg, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return cfg, fmt.Errorf("unsupported configuration file %q: expected .toml, .yaml or .yml", path)
	}

	cfg.Merge(override)
	return cfg, nil
}

// Merge replaces the values of the configuration with the non-empty values of override
func (c *Config) Merge(override Config) {
	if override.Source != "" {
		c.Source = override.Source
	}
	if override.Repository != "" {
		c.Repository = override.Repository
	}
	if override.Version != "" {
		c.Version = override.Version
	}
	if override.UserAgent != "" {
		c.UserAgent = override.UserAgent
	}
	if override.BaseURL != "" {
		c.BaseURL = override.BaseURL
	}
	if override.Manifest != "" {
		c.Manifest = override.Manifest
	}
}
