// Package config loads the tracker's YAML configuration with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the operator-tunable settings.
type Config struct {
	// DataPath locates the persisted JSON document.
	DataPath string `yaml:"data_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Currency is the symbol prefixed to rendered amounts.
	Currency string `yaml:"currency"`
}

// Default returns the built-in settings: data next to the user's home
// directory, info logging, euro display.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataPath: filepath.Join(home, ".budgetbook", "data.json"),
		LogLevel: "info",
		Currency: "€",
	}
}

// Load reads the YAML file at path on top of the defaults, then applies
// environment overrides (BUDGETBOOK_DATA, BUDGETBOOK_LOG_LEVEL). A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run or config-less setup; defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".budgetbook.yaml")
}

func (c *Config) applyEnv() {
	if v := os.Getenv("BUDGETBOOK_DATA"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("BUDGETBOOK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects unknown log levels and uncreatable data directories.
func (c Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.DataPath == "" {
		return errors.New("data_path cannot be empty")
	}
	dir := filepath.Dir(c.DataPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory %s: %w", dir, err)
	}
	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
}
