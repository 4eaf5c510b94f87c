// Package config loads the optional YAML configuration for the CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI-level settings. Analysis constants are deliberately not
// configurable; they are calibration values owned by the fluency package.
type Config struct {
	Reports ReportsConfig `yaml:"reports"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// ReportsConfig controls written analysis reports.
type ReportsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"` // directory for report files; "." by default
}

// LimitsConfig bounds input size. Analysis is a single in-memory pass, so a
// duration cap is the only resource-hygiene knob it needs.
type LimitsConfig struct {
	MaxDurationSecs float64 `yaml:"max_duration_secs"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // logrus level name: debug, info, warn, error
	File  string `yaml:"file"`  // log file path; empty logs to stderr
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Reports: ReportsConfig{Enabled: false, Dir: "."},
		Limits:  LimitsConfig{MaxDurationSecs: 600},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// Load reads and validates a YAML config file, filling unset fields with
// defaults. An empty path returns the defaults untouched.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return config, nil
}

// applyDefaults fills zero-valued fields after unmarshalling.
func (c *Config) applyDefaults() {
	if c.Reports.Dir == "" {
		c.Reports.Dir = "."
	}
	if c.Limits.MaxDurationSecs == 0 {
		c.Limits.MaxDurationSecs = 600
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Limits.MaxDurationSecs < 0 {
		return fmt.Errorf("limits: max_duration_secs must be non-negative, got %v", c.Limits.MaxDurationSecs)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}

	return nil
}
