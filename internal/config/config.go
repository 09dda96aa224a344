package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/jamonette/tzol/internal/ui"
)

// EnvPrefix prefixes environment overrides, e.g. TZOL_COLOR.
const EnvPrefix = "TZOL"

// Config holds the application configuration.
type Config struct {
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log_level"`
	LabelWidth int    `mapstructure:"label_width"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Color:      string(ui.ModeAuto),
		LogLevel:   "warn",
		LabelWidth: 20,
	}
}

// DefaultConfigDir returns the default configuration directory (~/.tzol).
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".tzol"), nil
}

// DefaultConfigPath returns the path to the default config file.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path and applies TZOL_* environment
// overrides. A missing file is an error only when required is set;
// otherwise defaults are used.
func Load(path string, required bool) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("color", def.Color)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("label_width", def.LabelWidth)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			v.SetConfigFile(path)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := ui.ParseMode(c.Color); err != nil {
		return fmt.Errorf("config color: %w", err)
	}
	if c.LabelWidth <= 0 {
		return fmt.Errorf("config label_width must be positive, got %d", c.LabelWidth)
	}
	return nil
}

// ColorMode returns the validated color mode.
func (c *Config) ColorMode() ui.Mode {
	m, err := ui.ParseMode(c.Color)
	if err != nil {
		return ui.ModeAuto
	}
	return m
}
