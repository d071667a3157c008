package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency code used when none is configured.
const DefaultCurrency = "ZMW"

// Settings holds the process-wide spending cap and display currency.
type Settings struct {
	Cap      decimal.Decimal `json:"cap"`
	Currency string          `json:"currency"`
}

// DefaultSettings returns a zero cap with the default currency.
func DefaultSettings() Settings {
	return Settings{
		Cap:      decimal.Zero,
		Currency: DefaultCurrency,
	}
}

// FormatAmount renders an amount prefixed with the currency, e.g. "ZMW 12.50".
func (s Settings) FormatAmount(amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", s.Currency, amount.StringFixed(2))
}
