// Package config loads VocaMaster settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// DataFile is the vocabulary data file.
	DataFile string `mapstructure:"data_file" validate:"required"`

	// HistoryDB is the quiz history database. Empty means the default
	// XDG data path.
	HistoryDB string `mapstructure:"history_db"`

	// PageSize is the number of entries per LIST page.
	PageSize int `mapstructure:"page_size" validate:"gte=1,lte=100"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`

	// LogFile receives logs while the TUI owns the terminal. Empty
	// discards them.
	LogFile string `mapstructure:"log_file"`
}

// Defaults.
const (
	DefaultDataFile = "voca.dat"
	DefaultPageSize = 10
	DefaultLogLevel = "warn"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration. If path is empty the default config file is
// used when it exists; a missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_file", DefaultDataFile)
	v.SetDefault("history_db", "")
	v.SetDefault("page_size", DefaultPageSize)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_file", "")

	v.SetConfigType("yaml")
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/vocamaster/config.yaml, falling back
// to ~/.config/vocamaster/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "vocamaster", "config.yaml"), nil
}
