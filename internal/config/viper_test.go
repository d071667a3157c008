package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at an empty temp dir so no
// stray config file or .env is picked up, and clears SFT_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, key := range []string{
		"SFT_LOG_LEVEL", "SFT_LOG_FORMAT", "SFT_STORAGE_BACKEND", "SFT_STORAGE_DIRECTORY",
		"SFT_STORAGE_SQLITE_PATH", "SFT_DEFAULTS_CURRENCY", "SFT_DEFAULTS_CAP",
		"SFT_TREND_DAYS", "SFT_IMPORT_STRICT", "SFT_EXPORT_FORMAT", "SFT_CSV_DELIMITER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "file", config.Storage.Backend)
	assert.Equal(t, "ZMW", config.Defaults.Currency)
	assert.True(t, config.DefaultCap().IsZero())
	assert.Equal(t, "<mark>", config.Search.HighlightOpen)
	assert.Equal(t, "</mark>", config.Search.HighlightClose)
	assert.Equal(t, 7, config.Trend.Days)
	assert.False(t, config.Import.Strict)
	assert.Equal(t, "json", config.Export.Format)
	assert.Equal(t, ',', config.Delimiter())
}

func TestDefault_IgnoresEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("SFT_LOG_LEVEL", "debug")

	config := Default()
	assert.Equal(t, "warn", config.Log.Level)
	assert.NoError(t, validateConfig(config))
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	for key, value := range map[string]string{
		"SFT_LOG_LEVEL":       "debug",
		"SFT_STORAGE_BACKEND": "sqlite",
		"SFT_DEFAULTS_CAP":    "1500.50",
		"SFT_TREND_DAYS":      "30",
		"SFT_IMPORT_STRICT":   "true",
		"SFT_CSV_DELIMITER":   ";",
	} {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig("")
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "sqlite", config.Storage.Backend)
	assert.Equal(t, "1500.5", config.DefaultCap().String())
	assert.Equal(t, 30, config.Trend.Days)
	assert.True(t, config.Import.Strict)
	assert.Equal(t, ';', config.Delimiter())
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	content := `
log:
  level: "error"
  format: "json"
storage:
  backend: "memory"
defaults:
  currency: "EUR"
trend:
  days: 14
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600))

	config, err := InitializeConfig("")
	require.NoError(t, err)
	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "memory", config.Storage.Backend)
	assert.Equal(t, "EUR", config.Defaults.Currency)
	assert.Equal(t, 14, config.Trend.Days)

	t.Setenv("SFT_DEFAULTS_CURRENCY", "USD")
	config, err = InitializeConfig("")
	require.NoError(t, err)
	assert.Equal(t, "USD", config.Defaults.Currency, "environment overrides the config file")
}

func TestInitializeConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  format: csv\n"), 0600))

	config, err := InitializeConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", config.Export.Format)

	_, err = InitializeConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{"invalid log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
		{"invalid backend", func(c *Config) { c.Storage.Backend = "redis" }, "invalid storage backend"},
		{"empty currency", func(c *Config) { c.Defaults.Currency = " " }, "defaults.currency must not be empty"},
		{"non numeric cap", func(c *Config) { c.Defaults.Cap = "lots" }, "defaults.cap must be a number"},
		{"negative cap", func(c *Config) { c.Defaults.Cap = "-5" }, "defaults.cap must not be negative"},
		{"zero trend days", func(c *Config) { c.Trend.Days = 0 }, "trend.days must be between 1 and 366"},
		{"invalid export format", func(c *Config) { c.Export.Format = "xlsx" }, "invalid export format"},
		{"invalid CSV delimiter", func(c *Config) { c.CSV.Delimiter = "abc" }, "CSV delimiter must be a single character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			config, err := InitializeConfig("")
			require.NoError(t, err)

			tt.modifyConfig(config)
			err = validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestStorageLocation(t *testing.T) {
	home := isolate(t)
	config, err := InitializeConfig("")
	require.NoError(t, err)

	loc, err := config.StorageLocation()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sft", "data"), loc)

	config.Storage.Backend = "sqlite"
	loc, err = config.StorageLocation()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".sft", "data", "sft.db"), loc)

	config.Storage.SQLitePath = "/tmp/custom.db"
	loc, err = config.StorageLocation()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", loc)

	config.Storage.Backend = "memory"
	loc, err = config.StorageLocation()
	require.NoError(t, err)
	assert.Empty(t, loc)
}

func TestLoadEnv(t *testing.T) {
	dir := isolate(t)

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SFT_TEST_LOADENV=from-file\n"), 0600))
	t.Setenv("SFT_TEST_LOADENV", "")
	require.NoError(t, os.Unsetenv("SFT_TEST_LOADENV"))

	loaded, err = LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-file", os.Getenv("SFT_TEST_LOADENV"))
}
