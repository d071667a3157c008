package exchange

import (
	"time"

	"fjacquet/finance-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// record is the flat textual form of a transaction used by YAML and CSV.
type record struct {
	ID          string `yaml:"id,omitempty" csv:"id"`
	Description string `yaml:"description" csv:"description"`
	Amount      string `yaml:"amount" csv:"amount"`
	Category    string `yaml:"category" csv:"category"`
	Date        string `yaml:"date" csv:"date"`
	CreatedAt   string `yaml:"createdAt,omitempty" csv:"createdAt"`
	UpdatedAt   string `yaml:"updatedAt,omitempty" csv:"updatedAt"`
}

type settingsRecord struct {
	Cap      string `yaml:"cap"`
	Currency string `yaml:"currency"`
}

func toRecord(t models.Transaction) record {
	return record{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Date:        t.Date,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

func (r record) toTransaction(format Format, row int) (models.Transaction, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return models.Transaction{}, malformed(format, row, "invalid amount", err)
	}
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return models.Transaction{}, malformed(format, row, "invalid createdAt", err)
	}
	updated, err := parseTime(r.UpdatedAt)
	if err != nil {
		return models.Transaction{}, malformed(format, row, "invalid updatedAt", err)
	}
	return models.Transaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      amount,
		Category:    r.Category,
		Date:        r.Date,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
