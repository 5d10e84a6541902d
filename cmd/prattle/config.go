package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/natefinch/atomic"

	"github.com/sheesania/prattle/pkg/markov"
)

// Config holds the persistent defaults for generation runs. Flags given on
// the command line override these values.
type Config struct {
	GroupSize int    `json:"group_size"`
	Mode      string `json:"mode"`
	LogLevel  string `json:"log_level"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		GroupSize: defaultGroupSize,
		Mode:      string(markov.ModeCharacter),
		LogLevel:  "warn",
	}
}

// Validate reports whether the configuration values can drive a run.
func (c *Config) Validate() error {
	if c.GroupSize < 1 {
		return fmt.Errorf("group_size %d: %w", c.GroupSize, markov.ErrInvalidOrder)
	}
	if _, err := markov.ParseMode(c.Mode); err != nil {
		return err
	}
	return nil
}

// DefaultConfigPath returns the config file location under the user's XDG
// config directory.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "prattle", "config.json")
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string, logger *slog.Logger) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				logger.Warn("failed to create config directory", "path", path, "error", err)
				return config, nil
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing; a run works fine on defaults.
				logger.Warn("failed to write default config file", "path", path, "error", err)
			}
			return config, nil
		}
		// For other errors (e.g., permission denied), return the error.
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
