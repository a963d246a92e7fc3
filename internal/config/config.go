package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/thenoetrevino/tally/internal/database"
	"github.com/thenoetrevino/tally/internal/logging"
	"gopkg.in/yaml.v3"
)

// Prompt styles
const (
	PromptLine = "line"
	PromptForm = "form"
)

// Config represents the application configuration. Values come from the
// defaults, then the YAML file, then TALLY_* environment variables.
type Config struct {
	Backend     string `yaml:"backend" env:"TALLY_BACKEND"`
	DataPath    string `yaml:"data_path" env:"TALLY_DATA_PATH"`
	PromptStyle string `yaml:"prompt_style" env:"TALLY_PROMPT_STYLE"`
	LogLevel    string `yaml:"log_level" env:"TALLY_LOG_LEVEL"`
	ClearScreen bool   `yaml:"clear_screen" env:"TALLY_CLEAR_SCREEN"`
	StateDir    string `yaml:"state_dir" env:"TALLY_STATE_DIR"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Backend:     string(database.BackendJSON),
		PromptStyle: PromptLine,
		LogLevel:    "info",
		ClearScreen: true,
	}
}

// Load loads config from the user's config directory and the environment.
// A missing file is not an error.
func Load() (*Config, error) {
	config := Default()

	configPath, err := Path()
	if err == nil {
		if err := config.loadFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Fill in any missing values with defaults
	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile merges the YAML file over the current values
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate rejects unknown backends, prompt styles and log levels.
func (c *Config) Validate() error {
	if _, err := database.ParseBackend(c.Backend); err != nil {
		return err
	}
	if c.PromptStyle != PromptLine && c.PromptStyle != PromptForm {
		return fmt.Errorf("unknown prompt style %q (want line or form)", c.PromptStyle)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// DataFile returns the document path for the configured backend. An explicit
// data_path wins; otherwise the file lives in the state directory.
func (c *Config) DataFile() string {
	if c.DataPath != "" {
		return c.DataPath
	}

	switch database.Backend(c.Backend) {
	case database.BackendSQLite:
		return filepath.Join(c.StateDir, "db.sqlite")
	case database.BackendMemory:
		return ""
	default:
		return filepath.Join(c.StateDir, "db.json")
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tally", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tally", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() error {
	defaults := Default()
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	if c.PromptStyle == "" {
		c.PromptStyle = defaults.PromptStyle
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.StateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to determine state directory: %w", err)
		}
		c.StateDir = filepath.Join(homeDir, ".tally")
	}
	return nil
}
