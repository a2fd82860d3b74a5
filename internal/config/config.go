// Package config handles configuration loading and management for gauntlet.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// Config holds all configuration for gauntlet.
type Config struct {
	Checks  ChecksConfig  `mapstructure:"checks"`
	History HistoryConfig `mapstructure:"history"`
	Token   string        `mapstructure:"token"`
}

// ChecksConfig holds tunables shared by the validators.
type ChecksConfig struct {
	ReadmeFilename     string `mapstructure:"readme_filename"`
	MinNameLength      int    `mapstructure:"min_name_length"`
	LastCommitsToCheck int    `mapstructure:"last_commits_to_check"`
	TabSize            int    `mapstructure:"tab_size"`
	MaxComplexity      int    `mapstructure:"max_complexity"`
	MaxLineLength      int    `mapstructure:"max_line_length"`
}

// HistoryConfig holds run history storage settings.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Settings converts the checks section into the value handed to validators.
func (c *Config) Settings() check.Settings {
	return check.Settings{
		ReadmeFilename:     c.Checks.ReadmeFilename,
		MinNameLength:      c.Checks.MinNameLength,
		LastCommitsToCheck: c.Checks.LastCommitsToCheck,
		TabSize:            c.Checks.TabSize,
		MaxComplexity:      c.Checks.MaxComplexity,
		MaxLineLength:      c.Checks.MaxLineLength,
	}
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (GAUNTLET_TOKEN)
// 2. Project config (.gauntlet.yaml in current directory or parent)
// 3. User config (~/.config/gauntlet/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	userConfigDir := getUserConfigDir()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(userConfigDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	projectConfig := findProjectConfig()
	if projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.BindEnv("token", "GAUNTLET_TOKEN")

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values. The checks defaults mirror
// check.DefaultSettings.
func setDefaults(v *viper.Viper) {
	defaults := check.DefaultSettings()

	v.SetDefault("checks.readme_filename", defaults.ReadmeFilename)
	v.SetDefault("checks.min_name_length", defaults.MinNameLength)
	v.SetDefault("checks.last_commits_to_check", defaults.LastCommitsToCheck)
	v.SetDefault("checks.tab_size", defaults.TabSize)
	v.SetDefault("checks.max_complexity", defaults.MaxComplexity)
	v.SetDefault("checks.max_line_length", defaults.MaxLineLength)

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(getUserDataDir(), "history.db"))

	v.SetDefault("token", "")
}

// getUserConfigDir returns the XDG config directory for gauntlet.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "gauntlet")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "gauntlet")
	}
	return filepath.Join(home, ".config", "gauntlet")
}

// getUserDataDir returns the XDG data directory for gauntlet.
func getUserDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "gauntlet")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "share", "gauntlet")
	}
	return filepath.Join(home, ".local", "share", "gauntlet")
}

// findProjectConfig searches for .gauntlet.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".gauntlet.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	defaults := check.DefaultSettings()
	return &Config{
		Checks: ChecksConfig{
			ReadmeFilename:     defaults.ReadmeFilename,
			MinNameLength:      defaults.MinNameLength,
			LastCommitsToCheck: defaults.LastCommitsToCheck,
			TabSize:            defaults.TabSize,
			MaxComplexity:      defaults.MaxComplexity,
			MaxLineLength:      defaults.MaxLineLength,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    filepath.Join(getUserDataDir(), "history.db"),
		},
	}
}
