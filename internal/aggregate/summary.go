package aggregate

import (
	"time"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Summary bundles every dashboard figure for one collection.
type Summary struct {
	Count        int             `json:"count" yaml:"count"`
	Total        decimal.Decimal `json:"total" yaml:"total"`
	TopCategory  string          `json:"topCategory" yaml:"top_category"`
	Cap          decimal.Decimal `json:"cap" yaml:"cap"`
	CapRemaining decimal.Decimal `json:"capRemaining" yaml:"cap_remaining"`
	Currency     string          `json:"currency" yaml:"currency"`
	Trend        []DayTotal      `json:"trend" yaml:"trend"`
	Categories   []CategoryTotal `json:"categories" yaml:"categories"`
}

// Summarize computes a Summary with a trend window of days ending today.
func Summarize(txns []models.Transaction, settings models.Settings, days int, today time.Time) Summary {
	return Summary{
		Count:        RecordCount(txns),
		Total:        TotalAmount(txns),
		TopCategory:  TopCategory(txns),
		Cap:          settings.Cap,
		CapRemaining: CapRemaining(txns, settings),
		Currency:     settings.Currency,
		Trend:        TrendSeries(txns, days, today),
		Categories:   CategoryBreakdown(txns),
	}
}

// OverCap reports whether spending exceeds a positive cap.
func (s Summary) OverCap() bool {
	return s.Cap.IsPositive() && s.CapRemaining.IsNegative()
}
