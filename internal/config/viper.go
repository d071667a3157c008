// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/finance-tracker/internal/kvstore"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. SFT_LOG_LEVEL.
const EnvPrefix = "SFT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Backend    string `mapstructure:"backend" yaml:"backend"`
		Directory  string `mapstructure:"directory" yaml:"directory"`
		SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	} `mapstructure:"storage" yaml:"storage"`

	Defaults struct {
		Currency string `mapstructure:"currency" yaml:"currency"`
		Cap      string `mapstructure:"cap" yaml:"cap"`
	} `mapstructure:"defaults" yaml:"defaults"`

	Search struct {
		HighlightOpen  string `mapstructure:"highlight_open" yaml:"highlight_open"`
		HighlightClose string `mapstructure:"highlight_close" yaml:"highlight_close"`
	} `mapstructure:"search" yaml:"search"`

	Trend struct {
		Days int `mapstructure:"days" yaml:"days"`
	} `mapstructure:"trend" yaml:"trend"`

	Import struct {
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"import" yaml:"import"`

	Export struct {
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"export" yaml:"export"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// An explicit configFile replaces the search path; it must exist.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.sft")
		v.AddConfigPath(".sft")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Read config file (optional unless explicitly given)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration without reading any config file
// or environment variable.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("default configuration does not unmarshal: %v", err))
	}
	return &config
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.backend", kvstore.BackendFile)
	v.SetDefault("storage.directory", "")
	v.SetDefault("storage.sqlite_path", "")

	v.SetDefault("defaults.currency", "ZMW")
	v.SetDefault("defaults.cap", "0")

	v.SetDefault("search.highlight_open", "<mark>")
	v.SetDefault("search.highlight_close", "</mark>")

	v.SetDefault("trend.days", 7)
	v.SetDefault("import.strict", false)
	v.SetDefault("export.format", "json")
	v.SetDefault("csv.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Storage.Backend {
	case kvstore.BackendFile, kvstore.BackendSQLite, kvstore.BackendMemory:
	default:
		return fmt.Errorf("invalid storage backend: %s (must be 'file', 'sqlite' or 'memory')", config.Storage.Backend)
	}

	if strings.TrimSpace(config.Defaults.Currency) == "" {
		return fmt.Errorf("defaults.currency must not be empty")
	}

	capValue, err := decimal.NewFromString(config.Defaults.Cap)
	if err != nil {
		return fmt.Errorf("defaults.cap must be a number, got: %s", config.Defaults.Cap)
	}
	if capValue.IsNegative() {
		return fmt.Errorf("defaults.cap must not be negative, got: %s", config.Defaults.Cap)
	}

	if config.Trend.Days < 1 || config.Trend.Days > 366 {
		return fmt.Errorf("trend.days must be between 1 and 366, got: %d", config.Trend.Days)
	}

	switch config.Export.Format {
	case "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid export format: %s (must be 'json', 'yaml' or 'csv')", config.Export.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// DefaultCap returns the configured initial spending cap.
func (c *Config) DefaultCap() decimal.Decimal {
	d, err := decimal.NewFromString(c.Defaults.Cap)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// DataDirectory returns the directory holding the file backend's documents,
// defaulting to $HOME/.sft/data.
func (c *Config) DataDirectory() (string, error) {
	if c.Storage.Directory != "" {
		return c.Storage.Directory, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".sft", "data"), nil
}

// StorageLocation returns the location handed to kvstore.Open for the
// configured backend.
func (c *Config) StorageLocation() (string, error) {
	switch c.Storage.Backend {
	case kvstore.BackendMemory:
		return "", nil
	case kvstore.BackendSQLite:
		if c.Storage.SQLitePath != "" {
			return c.Storage.SQLitePath, nil
		}
		dir, err := c.DataDirectory()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "sft.db"), nil
	default:
		return c.DataDirectory()
	}
}
