package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fraction digits kept for every monetary value.
const MoneyScale = 2

// ParseAmount parses a decimal string such as "150.00".
// Amounts must be finite, non-negative and carry at most MoneyScale fraction digits.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, NewValidationError(field, "is required")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(field, "is not a decimal number")
	}
	return d, CheckAmount(field, d)
}

// CheckAmount validates an already-typed amount.
func CheckAmount(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return NewValidationError(field, "must not be negative")
	}
	if !d.Equal(d.Round(MoneyScale)) {
		return NewValidationError(field, "must have at most 2 decimal places")
	}
	return nil
}
