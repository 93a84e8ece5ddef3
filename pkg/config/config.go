// Package config loads tool configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pverhoeven/grepline/pkg/format"
)

// Config holds all configuration for grepline.
type Config struct {
	// Format is the output format used when no format flag is given.
	Format string `yaml:"format"`

	// HighlightColor is the SGR code the color format wraps matches in.
	HighlightColor string `yaml:"highlight_color"`

	// MaxLineBytes caps the length of a single input line; longer lines
	// are a read error for their source.
	MaxLineBytes int `yaml:"max_line_bytes"`

	// Verbosity raises the log level (0 = warnings only).
	Verbosity int `yaml:"verbosity"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Format:         string(format.TypeDefault),
		HighlightColor: format.DefaultHighlightColor,
		MaxLineBytes:   1024 * 1024,
	}
}

// Load loads configuration from file and environment.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("GREPLINE_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "grepline", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "grepline", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if name := os.Getenv("GREPLINE_FORMAT"); name != "" {
		cfg.Format = name
	}

	if color := os.Getenv("GREPLINE_HIGHLIGHT_COLOR"); color != "" {
		cfg.HighlightColor = color
	}

	if limit := os.Getenv("GREPLINE_MAX_LINE_BYTES"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return fmt.Errorf("invalid GREPLINE_MAX_LINE_BYTES: %w", err)
		}
		cfg.MaxLineBytes = n
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if _, err := format.ParseType(cfg.Format); err != nil {
		return err
	}

	if _, err := strconv.Atoi(cfg.HighlightColor); err != nil {
		return fmt.Errorf("highlight_color must be a numeric SGR code, got %q", cfg.HighlightColor)
	}

	if cfg.MaxLineBytes <= 0 {
		return fmt.Errorf("max_line_bytes must be positive, got %d", cfg.MaxLineBytes)
	}

	if cfg.Verbosity < 0 {
		return fmt.Errorf("verbosity must be non-negative, got %d", cfg.Verbosity)
	}

	return nil
}
