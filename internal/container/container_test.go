package container

import (
	"bytes"
	"testing"
	"time"

	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := config.InitializeConfig("")
	require.NoError(t, err)
	cfg.Storage.Backend = backend
	cfg.Storage.Directory = dir
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		backend     string
		expectError bool
		errorMsg    string
	}{
		{name: "memory backend", backend: "memory"},
		{name: "file backend", backend: "file"},
		{name: "sqlite backend", backend: "sqlite"},
		{name: "unknown backend", backend: "redis", expectError: true, errorMsg: "failed to open redis storage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.backend)

			c, err := NewContainer(cfg, WithLogger(logging.NewMockLogger()))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			defer func() { assert.NoError(t, c.Close()) }()

			assert.NotNil(t, c.GetLedger())
			assert.NotNil(t, c.GetCodec())
			assert.NotNil(t, c.GetReporter())
			assert.Same(t, cfg, c.GetConfig())
			assert.Equal(t, "<mark>", c.GetMarker().Open)
		})
	}
}

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.EqualError(t, err, "configuration cannot be nil")
}

func TestNewContainer_AppliesDefaults(t *testing.T) {
	cfg := testConfig(t, "memory")
	cfg.Defaults.Currency = "KES"
	cfg.Defaults.Cap = "750"

	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err := NewContainer(cfg,
		WithLogger(logging.NewMockLogger()),
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(func() string { return "txn_fixed" }))
	require.NoError(t, err)

	s := c.GetLedger().Settings()
	assert.Equal(t, "KES", s.Currency)
	assert.Equal(t, "750", s.Cap.String())
	assert.Equal(t, fixed, c.Now())

	txn, err := c.GetLedger().Add(models.Candidate{Description: "Taxi", Amount: "9", Category: "Transport", Date: "2024-01-02"})
	require.NoError(t, err)
	assert.Equal(t, "txn_fixed", txn.ID)
	assert.Equal(t, fixed, txn.CreatedAt)
}

func TestNewContainer_FileBackendPersists(t *testing.T) {
	cfg := testConfig(t, "file")

	var logs bytes.Buffer
	first, err := NewContainer(cfg, WithLogOutput(&logs))
	require.NoError(t, err)
	_, err = first.GetLedger().Add(models.Candidate{Description: "Bread", Amount: "2.20", Category: "Food", Date: "2024-01-02"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewContainer(cfg, WithLogOutput(&logs))
	require.NoError(t, err)
	defer second.Close()
	assert.Len(t, second.GetLedger().ExportAll(), 1)
}
