package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{"debug level with text format", "debug", "text", logrus.DebugLevel},
		{"info level with json format", "info", "json", logrus.InfoLevel},
		{"upper case level", "WARN", "text", logrus.WarnLevel},
		{"invalid level falls back to warn", "invalid", "text", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format, &bytes.Buffer{})
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.level())
		})
	}
}

func TestLogrusAdapter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapter("debug", "json", &buf)

	logger.WithField(FieldOperation, OpAdd).
		WithError(errors.New("boom")).
		Info("Transaction stored", F(FieldTransactionID, "txn_1"), F(FieldCount, 3))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Transaction stored", decoded["msg"])
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, OpAdd, decoded[FieldOperation])
	assert.Equal(t, "txn_1", decoded[FieldTransactionID])
	assert.Equal(t, float64(3), decoded[FieldCount])
	assert.Equal(t, "boom", decoded["error"])
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapter("warn", "text", &buf)

	logger.Debug("hidden")
	logger.Info("hidden too")
	assert.Empty(t, buf.String())

	logger.Warn("visible", F(FieldKey, "sft_settings_v1"))
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "key=sft_settings_v1")
}

func TestLogrusAdapter_UnknownLevelIsReported(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogrusAdapter("loud", "text", &buf)

	assert.Contains(t, buf.String(), "Unknown log level, using warning")
	assert.Contains(t, buf.String(), "configured=loud")

	buf.Reset()
	logger.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestLogrusAdapter_DerivedLoggersShareOutput(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogrusAdapter("info", "json", &buf)
	child := base.WithFields(F(FieldOperation, OpImport))

	child.Info("first")
	base.Info("second")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"operation":"import"`)
	assert.NotContains(t, string(lines[1]), `"operation"`)
}

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()
	child := mock.WithField(FieldComponent, "ledger")

	child.Info("loaded", F(FieldCount, 2))
	child.WithError(errors.New("x")).Warn("corrupt")
	mock.Debug("plain")

	entries := mock.GetEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, []Field{{FieldComponent, "ledger"}, {FieldCount, 2}}, entries[0].Fields)
	assert.EqualError(t, entries[1].Error, "x")
	assert.True(t, mock.HasEntry("WARN", "corrupt"))
	assert.Len(t, mock.GetEntriesByLevel("DEBUG"), 1)
}
