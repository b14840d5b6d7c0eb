package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value. It wraps a decimal so arithmetic stays exact,
// and marshals as a bare JSON number to match the persisted document.
type Amount struct {
	decimal.Decimal
}

// AmountFromInt builds an Amount from a whole number of currency units.
func AmountFromInt(n int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(n)}
}

// ParseAmount parses user input as a decimal amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: expected a decimal number", s)
	}
	return Amount{Decimal: d}, nil
}

// Negative reports whether the amount is below zero.
func (a Amount) Negative() bool {
	return a.Decimal.IsNegative()
}

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Add(b.Decimal)}
}

// Sub returns a - b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{Decimal: a.Decimal.Sub(b.Decimal)}
}

// PercentOf returns a/total*100 rounded to two decimals, or zero when total
// is zero.
func (a Amount) PercentOf(total Amount) Amount {
	if total.Decimal.IsZero() {
		return Amount{Decimal: decimal.Zero}
	}
	pct := a.Decimal.Div(total.Decimal).Mul(decimal.NewFromInt(100)).Round(2)
	return Amount{Decimal: pct}
}

// MarshalJSON writes the amount as an unquoted number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// UnmarshalJSON accepts both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, err := decimal.NewFromString(strings.Trim(string(data), `"`))
	if err != nil {
		return fmt.Errorf("invalid stored amount %s: %w", data, err)
	}
	a.Decimal = d
	return nil
}
