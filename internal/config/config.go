// Package config provides configuration management for FlowTask.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the FlowTask application.
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// ThemeConfig holds color customization for list output and the focus
// timer.
type ThemeConfig struct {
	ColorWork      string `mapstructure:"color_work"`
	ColorBreak     string `mapstructure:"color_break"`
	ColorPaused    string `mapstructure:"color_paused"`
	ColorHigh      string `mapstructure:"color_high"`
	ColorMedium    string `mapstructure:"color_medium"`
	ColorLow       string `mapstructure:"color_low"`
	ColorOverdue   string `mapstructure:"color_overdue"`
	ColorDone      string `mapstructure:"color_done"`
	ColorHelp      string `mapstructure:"color_help"`
	ColorHighlight string `mapstructure:"color_highlight"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:      "#7C6FE0",
		ColorBreak:     "#4ECDC4",
		ColorPaused:    "#6B7280",
		ColorHigh:      "#EF4444",
		ColorMedium:    "#F59E0B",
		ColorLow:       "#10B981",
		ColorOverdue:   "#EF4444",
		ColorDone:      "#6B7280",
		ColorHelp:      "#95A5A6",
		ColorHighlight: "#FDE047",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: "~/.flowtask",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with
// defaults on first run.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	setDefaults()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in data directory
	if cfg.Storage.DataDir == "~/.flowtask" || cfg.Storage.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Storage.DataDir = filepath.Join(homeDir, ".flowtask")
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("storage.data_dir", cfg.Storage.DataDir)
	viper.Set("theme.color_work", cfg.Theme.ColorWork)
	viper.Set("theme.color_break", cfg.Theme.ColorBreak)
	viper.Set("theme.color_paused", cfg.Theme.ColorPaused)
	viper.Set("theme.color_high", cfg.Theme.ColorHigh)
	viper.Set("theme.color_medium", cfg.Theme.ColorMedium)
	viper.Set("theme.color_low", cfg.Theme.ColorLow)
	viper.Set("theme.color_overdue", cfg.Theme.ColorOverdue)
	viper.Set("theme.color_done", cfg.Theme.ColorDone)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.color_highlight", cfg.Theme.ColorHighlight)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".flowtask", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "flowtask.db")
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("storage.data_dir", "~/.flowtask")

	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_work", defaults.ColorWork)
	viper.SetDefault("theme.color_break", defaults.ColorBreak)
	viper.SetDefault("theme.color_paused", defaults.ColorPaused)
	viper.SetDefault("theme.color_high", defaults.ColorHigh)
	viper.SetDefault("theme.color_medium", defaults.ColorMedium)
	viper.SetDefault("theme.color_low", defaults.ColorLow)
	viper.SetDefault("theme.color_overdue", defaults.ColorOverdue)
	viper.SetDefault("theme.color_done", defaults.ColorDone)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.color_highlight", defaults.ColorHighlight)
}
