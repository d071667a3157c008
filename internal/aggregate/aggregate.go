// Package aggregate computes the dashboard figures over a transaction
// collection. Every function is pure.
package aggregate

import (
	"time"

	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// NoCategory is reported by TopCategory for an empty collection.
const NoCategory = "N/A"

// DefaultTrendDays is the window used by the dashboard trend chart.
const DefaultTrendDays = 7

// DayTotal is one point of a trend series.
type DayTotal struct {
	Date  string          `json:"date" yaml:"date"`
	Total decimal.Decimal `json:"total" yaml:"total"`
}

// CategoryTotal is the count and summed amount of one category.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Count    int             `json:"count" yaml:"count"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// TotalAmount sums every amount, left to right.
func TotalAmount(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}

// RecordCount returns the number of transactions.
func RecordCount(txns []models.Transaction) int {
	return len(txns)
}

// TopCategory returns the category with the most transactions. On a tie the
// category that reached the winning count first wins.
func TopCategory(txns []models.Transaction) string {
	counts := make(map[string]int)
	best, bestCount := NoCategory, 0
	for _, t := range txns {
		counts[t.Category]++
		if c := counts[t.Category]; c > bestCount {
			best, bestCount = t.Category, c
		}
	}
	return best
}

// CapRemaining returns cap minus the total. The result may be negative.
func CapRemaining(txns []models.Transaction, settings models.Settings) decimal.Decimal {
	return settings.Cap.Sub(TotalAmount(txns))
}

// TrendSeries returns, for the n calendar days ending with today, the sum of
// amounts dated on each day, oldest first. Days without transactions are zero.
func TrendSeries(txns []models.Transaction, n int, today time.Time) []DayTotal {
	days := dateutils.LastNDays(n, today)
	index := make(map[string]int, len(days))
	series := make([]DayTotal, len(days))
	for i, d := range days {
		index[d] = i
		series[i] = DayTotal{Date: d, Total: decimal.Zero}
	}

	for _, t := range txns {
		if i, ok := index[t.Date]; ok {
			series[i].Total = series[i].Total.Add(t.Amount)
		}
	}
	return series
}

// CategoryBreakdown groups transactions by category in first-seen order.
func CategoryBreakdown(txns []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range txns {
		i, ok := index[t.Category]
		if !ok {
			i = len(out)
			index[t.Category] = i
			out = append(out, CategoryTotal{Category: t.Category, Total: decimal.Zero})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(t.Amount)
	}
	return out
}
