// Package config loads pval settings from layered YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/roach88/pval/internal/num"
)

// Config holds the settings shared by every pval command.
type Config struct {
	// Domain is the number domain: float, rat or decimal.
	Domain string `yaml:"domain"`
	// Database is the SQLite file holding stored measurements.
	Database string `yaml:"database"`
	// Units lists unit definition files (.yaml, .yml or .cue) loaded after
	// the built-in units.
	Units []string `yaml:"units"`
	// Format is the output format: text or json.
	Format string `yaml:"format"`
}

// Formats lists the accepted output formats.
var Formats = []string{"text", "json"}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Domain:   num.NameFloat,
		Database: "pval.db",
		Format:   "text",
	}
}

// Validate checks the domain and format names.
func (c *Config) Validate() error {
	if !num.Valid(c.Domain) {
		return fmt.Errorf("domain %q must be one of %v", c.Domain, num.Names())
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("format %q must be one of %v", c.Format, Formats)
	}
	if c.Database == "" {
		return fmt.Errorf("database is required")
	}
	return nil
}

// LoadFromFile reads one config file. Unknown keys are rejected and relative
// unit paths are resolved against the file's directory.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, u := range cfg.Units {
		if !filepath.IsAbs(u) {
			cfg.Units[i] = filepath.Join(dir, u)
		}
	}
	return cfg, nil
}

// SaveToFile writes the config as YAML, creating parent directories.
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Merge overlays the non-zero fields of other. Unit files accumulate.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Domain != "" {
		c.Domain = other.Domain
	}
	if other.Database != "" {
		c.Database = other.Database
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	c.Units = append(c.Units, other.Units...)
}
