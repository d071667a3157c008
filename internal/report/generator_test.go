package report

import (
	"encoding/json"
	"testing"
	"time"

	"fjacquet/finance-tracker/internal/aggregate"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleSummary() aggregate.Summary {
	txns := []models.Transaction{
		{Description: "Lunch", Amount: decimal.RequireFromString("12.5"), Category: "Food", Date: "2024-06-07"},
		{Description: "Rent", Amount: decimal.NewFromInt(100), Category: "Housing", Date: "2024-06-05"},
	}
	settings := models.Settings{Cap: decimal.NewFromInt(100), Currency: "ZMW"}
	return aggregate.Summarize(txns, settings, 3, time.Date(2024, 6, 7, 10, 0, 0, 0, time.UTC))
}

func TestGenerate_Text(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	out, err := g.Generate(sampleSummary(), FormatText)
	require.NoError(t, err)

	text := string(out)
	assert.Regexp(t, `Transactions:\s+2\n`, text)
	assert.Contains(t, text, "ZMW 112.50")
	assert.Regexp(t, `Top category:\s+Food\n`, text)
	assert.Contains(t, text, "ZMW -12.50 (over cap)")
	assert.Contains(t, text, "Last 3 days")
	assert.Contains(t, text, "Jun 7")
	assert.Contains(t, text, "Housing")
}

func TestGenerate_JSON(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	out, err := g.Generate(sampleSummary(), FormatJSON)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Food", decoded["topCategory"])
	assert.Equal(t, 112.5, decoded["total"])
	assert.Len(t, decoded["trend"], 3)
}

func TestGenerate_YAML(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	out, err := g.Generate(sampleSummary(), FormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, "Food", decoded["top_category"])
	assert.Equal(t, "ZMW", decoded["currency"])
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	g := NewGenerator(logging.NewMockLogger())

	_, err := g.Generate(sampleSummary(), "xml")
	assert.EqualError(t, err, "unsupported report format: xml")
}
