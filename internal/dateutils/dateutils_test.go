package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "2024-02-29", false},
		{"impossible day", "2023-02-30", true},
		{"european", "15.01.2023", true},
		{"empty", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseISODate(tc.input, time.UTC)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, ToISODate(got))
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 23, 59, 1, 5, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestLastNDays(t *testing.T) {
	today := time.Date(2024, 3, 2, 15, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{
		"2024-02-25", "2024-02-26", "2024-02-27", "2024-02-28",
		"2024-02-29", "2024-03-01", "2024-03-02",
	}, LastNDays(7, today))
	assert.Equal(t, []string{"2024-03-02"}, LastNDays(1, today))
	assert.Empty(t, LastNDays(0, today))
	assert.Empty(t, LastNDays(-3, today))
}

func TestShortLabel(t *testing.T) {
	assert.Equal(t, "Mar 2", ShortLabel("2024-03-02"))
	assert.Equal(t, "garbage", ShortLabel("garbage"))
}
