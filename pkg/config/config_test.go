package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sgaunet/humantime/pkg/config"
	"github.com/sgaunet/humantime/pkg/humanize"
	"github.com/sgaunet/humantime/pkg/locale"
)

// YAML fixtures for Load() tests.
const (
	validConfigYAML = `
locale: fr
strategy: precision
precision: 0.9
quantity: words
log_level: debug
`

	validConfigWithWhitespace = `
locale: "  de  "
strategy: "  Precision  "
precision: 0.5
quantity: "  NONE "
log_level: " warn "
`

	partialConfigYAML = `
locale: es
`

	validConfigWithComments = `
# humantime configuration
locale: en     # phrase language
strategy: default
`

	malformedYAMLIndentation = `
locale: en
  strategy: default
`

	malformedYAMLUnclosedQuote = `
locale: "en
`

	emptyYAML = ``
)

// setupTestConfig creates a temporary home directory with a config file.
// It uses t.TempDir() for automatic cleanup and t.Setenv() to redirect $HOME.
func setupTestConfig(t *testing.T, configContent string) string {
	t.Helper()

	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "humantime")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return configPath
}

// TestLoad tests loading valid configuration files.
func TestLoad(t *testing.T) {
	tests := []struct {
		name           string
		configYAML     string
		expectedConfig config.Config
	}{
		{
			name:       "valid standard config",
			configYAML: validConfigYAML,
			expectedConfig: config.Config{
				Locale: "fr", Strategy: "precision", Precision: 0.9, Quantity: "words", LogLevel: "debug",
			},
		},
		{
			name:       "config with whitespace (auto-trimmed)",
			configYAML: validConfigWithWhitespace,
			expectedConfig: config.Config{
				Locale: "de", Strategy: "precision", Precision: 0.5, Quantity: "none", LogLevel: "warn",
			},
		},
		{
			name:       "partial config keeps defaults",
			configYAML: partialConfigYAML,
			expectedConfig: config.Config{
				Locale: "es", Strategy: "default", Precision: config.DefaultPrecision, Quantity: "numeric",
				LogLevel: "info",
			},
		},
		{
			name:       "config with comments",
			configYAML: validConfigWithComments,
			expectedConfig: config.Config{
				Locale: "en", Strategy: "default", Precision: config.DefaultPrecision, Quantity: "numeric",
				LogLevel: "info",
			},
		},
		{
			name:           "empty file is all defaults",
			configYAML:     emptyYAML,
			expectedConfig: *config.Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.configYAML)

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("Expected Load() to succeed, got error: %v", err)
			}
			if cfg == nil {
				t.Fatal("Expected config to be non-nil")
			}
			if *cfg != tt.expectedConfig {
				t.Errorf("Load() = %+v, expected %+v", *cfg, tt.expectedConfig)
			}
		})
	}
}

// TestLoadFileNotFound tests error handling when config file doesn't exist.
func TestLoadFileNotFound(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load()
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got: %v", err)
	}
	if !strings.Contains(err.Error(), "config.yml") {
		t.Errorf("Error should mention config file path: %v", err)
	}
	if cfg != nil {
		t.Error("Expected nil config on error")
	}
}

// TestLoadMalformedYAML tests error handling for malformed YAML files.
func TestLoadMalformedYAML(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
	}{
		{"incorrect indentation", malformedYAMLIndentation},
		{"unclosed quotes", malformedYAMLUnclosedQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.configYAML)

			cfg, err := config.Load()
			if err == nil {
				t.Fatal("Expected error for malformed YAML, got nil")
			}
			if !strings.Contains(err.Error(), "failed to parse config file") {
				t.Errorf("Error should mention parsing failure: %v", err)
			}
			if cfg != nil {
				t.Error("Expected nil config on error")
			}
		})
	}
}

// TestLoadValidationFailures tests that Load() calls Validate() and propagates errors.
func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name          string
		configYAML    string
		expectedError error
	}{
		{"unknown strategy", "strategy: fuzzy\n", humanize.ErrUnknownStrategy},
		{"precision zero", "strategy: precision\nprecision: 0\n", humanize.ErrInvalidPrecision},
		{"precision above one", "strategy: precision\nprecision: 1.5\n", humanize.ErrInvalidPrecision},
		{"unknown quantity", "quantity: roman\n", humanize.ErrUnknownQuantityMode},
		{"bad locale", "locale: \"not a tag\"\n", locale.ErrInvalidLocale},
		{"bad log level", "log_level: loud\n", config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.configYAML)

			cfg, err := config.Load()
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("Expected %v, got %v", tt.expectedError, err)
			}
			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("Error should mention validation: %v", err)
			}
			if cfg != nil {
				t.Error("Expected nil config on error")
			}
		})
	}
}

// TestLoadIgnoresPrecisionForDefaultStrategy tests that an unused precision is not validated.
func TestLoadIgnoresPrecisionForDefaultStrategy(t *testing.T) {
	setupTestConfig(t, "strategy: default\nprecision: 0\n")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Expected Load() to succeed, got error: %v", err)
	}
	if cfg.Strategy != humanize.StrategyDefault || cfg.Precision != 0 {
		t.Errorf("unexpected config: %+v", *cfg)
	}
}

// TestLoadFromFile tests loading from an explicit path.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(path, []byte(validConfigYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("Expected LoadFromFile() to succeed, got error: %v", err)
	}
	if cfg.Locale != "fr" || cfg.Precision != 0.9 {
		t.Errorf("unexpected config: %+v", *cfg)
	}

	_, err = config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got: %v", err)
	}
}

// TestDefaultIsValid ensures the built-in defaults pass validation.
func TestDefaultIsValid(t *testing.T) {
	if err := config.Default().Validate(); err != nil {
		t.Errorf("Default() should be valid, got: %v", err)
	}
}

// TestPath tests the configuration file location.
func TestPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := config.Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	expected := filepath.Join(home, ".config", "humantime", "config.yml")
	if path != expected {
		t.Errorf("Path() = %q, expected %q", path, expected)
	}
}
