package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all ego settings. Everything has a default; the config file
// is optional.
type Config struct {
	// DataDir overrides where the session record and history live.
	// Empty means ~/.ego.
	DataDir  string        `yaml:"data_dir,omitempty"`
	LogLevel string        `yaml:"log_level"`
	Counter  CounterConfig `yaml:"counter"`
	History  HistoryConfig `yaml:"history"`
}

// CounterConfig holds line-counter settings.
type CounterConfig struct {
	// ExtraExtensions are recognized in addition to the built-in set.
	ExtraExtensions []string `yaml:"extra_extensions,omitempty"`
}

// HistoryConfig holds session-archive settings.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns sensible defaults.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		History:  HistoryConfig{Enabled: true},
	}
}

// EgoDir returns the path to ~/.ego.
func EgoDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".ego"), nil
}

// EnsureEgoDir creates ~/.ego if it doesn't exist.
func EnsureEgoDir() (string, error) {
	dir, err := EgoDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create dir %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads configuration from ~/.ego/config.yaml. A missing file means
// defaults.
func Load() (*Config, error) {
	dir, err := EgoDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ResolveDataDir returns the directory holding the session record and
// history database, creating it if needed.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		if err := os.MkdirAll(c.DataDir, 0755); err != nil {
			return "", fmt.Errorf("create dir %s: %w", c.DataDir, err)
		}
		return c.DataDir, nil
	}
	return EnsureEgoDir()
}
