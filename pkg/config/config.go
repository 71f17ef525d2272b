// Package config handles loading and validation of user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/humantime/pkg/humanize"
	"github.com/sgaunet/humantime/pkg/locale"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPrecision is the precision used when none is configured.
	DefaultPrecision = 0.75
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidLogLevel is returned for a log level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("log_level must be one of debug, info, warn, error")
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Config represents the defaults applied by the humantime CLI.
type Config struct {
	Locale    string  `yaml:"locale"`
	Strategy  string  `yaml:"strategy"`
	Precision float64 `yaml:"precision"`
	Quantity  string  `yaml:"quantity"`
	LogLevel  string  `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Locale:    locale.DefaultLocale,
		Strategy:  humanize.StrategyDefault,
		Precision: DefaultPrecision,
		Quantity:  humanize.Numeric.String(),
		LogLevel:  DefaultLogLevel,
	}
}

// Path returns the location of the configuration file in the user's home directory.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "humantime", "config.yml"), nil
}

// Load reads and parses the configuration file from the user's home directory.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(configPath)
}

// LoadFromFile reads and parses the configuration file at configPath.
// Keys absent from the file keep their [Default] values.
func LoadFromFile(configPath string) (*Config, error) {
	// #nosec G304 - Reading a user-provided config path is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) normalize() {
	c.Locale = strings.TrimSpace(c.Locale)
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.Quantity = strings.ToLower(strings.TrimSpace(c.Quantity))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Locale != "" {
		if _, err := locale.Parse(c.Locale); err != nil {
			return err
		}
	}

	// precision is only checked when the precision strategy will use it
	if _, err := humanize.ParseStrategy(c.Strategy, c.Precision); err != nil {
		return err
	}

	if _, err := humanize.ParseQuantityMode(c.Quantity); err != nil {
		return err
	}

	if !logLevels[c.LogLevel] {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}
