// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are persisted and exported as JSON numbers, the way the
	// browser tracker stored them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one recorded financial event.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// AmountText returns the amount fixed to two decimal places, the textual
// form used by search and display.
func (t Transaction) AmountText() string {
	return t.Amount.StringFixed(2)
}

// Candidate holds raw, unvalidated field values as entered by a user.
type Candidate struct {
	Description string
	Amount      string
	Category    string
	Date        string
}

// CandidateFrom converts a stored transaction back to its textual form so that
// it can be merged with a patch and validated again.
func CandidateFrom(t Transaction) Candidate {
	return Candidate{
		Description: t.Description,
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Date:        t.Date,
	}
}

// Patch carries the fields to change on an existing transaction.
// Nil fields are left untouched.
type Patch struct {
	Description *string
	Amount      *string
	Category    *string
	Date        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Description == nil && p.Amount == nil && p.Category == nil && p.Date == nil
}

// Apply merges the patch over c and returns the result.
func (p Patch) Apply(c Candidate) Candidate {
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.Date != nil {
		c.Date = *p.Date
	}
	return c
}

// CloneTransactions returns a copy of the slice so callers cannot alias
// the ledger's internal state.
func CloneTransactions(in []Transaction) []Transaction {
	out := make([]Transaction, len(in))
	copy(out, in)
	return out
}
