// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults used when neither the config file, the environment nor a flag sets a value
const (
	DefaultTemplate  = "templates/Resume.pptx"
	DefaultOutputDir = "output"
	DefaultLogLevel  = "info"
)

// Environment variables read by FromEnv
const (
	EnvTemplate    = "RESUME_DECK_TEMPLATE"
	EnvOutputDir   = "RESUME_DECK_OUTPUT_DIR"
	EnvDatabaseURL = "DATABASE_URL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Template  string `json:"template,omitempty"`   // Path to the .pptx template
	OutputDir string `json:"output_dir,omitempty"` // Directory for formatted_<name>.pptx
	Report    string `json:"report,omitempty"`     // Optional .xlsx review sheet

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`                                                    // Print detailed debug information
	LogLevel    string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"` // slog level
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,url"`                      // PostgreSQL connection URL
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Template:  DefaultTemplate,
		OutputDir: DefaultOutputDir,
		LogLevel:  DefaultLogLevel,
	}
}

// FromEnv returns the configuration set through environment variables
func FromEnv() Config {
	return Config{
		Template:    os.Getenv(EnvTemplate),
		OutputDir:   os.Getenv(EnvOutputDir),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: the template's existence is checked when it is opened so that a
// missing template surfaces as a template load error.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" && !strings.EqualFold(filepath.Ext(c.Template), ".pptx") {
		return fmt.Errorf("config error: template must be a .pptx file: %s", c.Template)
	}
	if c.Report != "" && !strings.EqualFold(filepath.Ext(c.Report), ".xlsx") {
		return fmt.Errorf("config error: report must be a .xlsx file: %s", c.Report)
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// Layers are applied from the most specific: flags, then config file, then env, then Defaults().
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
