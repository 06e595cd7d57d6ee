// Package config loads the markconv configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the markconv configuration
type Config struct {
	From     string        `yaml:"from"`
	To       string        `yaml:"to"`
	Filter   string        `yaml:"filter,omitempty"`
	Timeout  time.Duration `yaml:"-"` // parsed from a duration string
	LogLevel string        `yaml:"log_level"`
	LogFile  string        `yaml:"log_file,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		From:     "markdown",
		To:       "latex",
		LogLevel: "info",
	}
}

// ConfigPath returns the path to the config file.
// Can be overridden for testing
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "markconv", "config.yaml")
}

type rawConfig struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Filter   string `yaml:"filter,omitempty"`
	Timeout  string `yaml:"timeout,omitempty"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Load reads the configuration at path, or at ConfigPath when path is
// empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML configuration. Keys left out keep their defaults.
func Parse(data []byte) (*Config, error) {
	def := DefaultConfig()
	raw := rawConfig{From: def.From, To: def.To, LogLevel: def.LogLevel}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := &Config{
		From:     raw.From,
		To:       raw.To,
		Filter:   raw.Filter,
		LogLevel: raw.LogLevel,
		LogFile:  raw.LogFile,
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format '%s': %w", raw.Timeout, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	raw := rawConfig{
		From:     c.From,
		To:       c.To,
		Filter:   c.Filter,
		LogLevel: c.LogLevel,
		LogFile:  c.LogFile,
	}
	if c.Timeout > 0 {
		raw.Timeout = c.Timeout.String()
	}
	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.From == "" {
		return fmt.Errorf("from cannot be empty")
	}
	if c.To == "" {
		return fmt.Errorf("to cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level '%s': must be one of: debug, info, warn, error", c.LogLevel)
	}
	return nil
}
