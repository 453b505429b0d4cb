package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money represents a monetary value in a specific currency.
// Amounts are decimals and are rounded to MoneyScale only at the edges.
type Money struct {
	Amount   decimal.Decimal
	Currency string // ISO 4217
}

// NewMoney creates a new Money instance.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// Round2 rounds half-up to two decimal places. Amounts handled here are never
// negative, so decimal's half-away-from-zero rounding is equivalent.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// Percent returns round2(d * pct / 100).
func Percent(d, pct decimal.Decimal) decimal.Decimal {
	return Round2(d.Mul(pct).Div(hundred))
}

// Convert converts the money to a target currency using a given FX rate.
// The rate should be (Target / Source). The result is rounded to two places.
func (m Money) Convert(targetCurrency string, rate decimal.Decimal) Money {
	return Money{
		Amount:   Round2(m.Amount.Mul(rate)),
		Currency: targetCurrency,
	}
}

// Sub returns m - other. Currencies must match.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// String returns the string representation of the money.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(MoneyScale), m.Currency)
}

// ParseAmount turns user input into a positive decimal. Surrounding spaces,
// inner spaces and thousands separators are tolerated; anything else that is
// not a positive number fails with ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || r == ' ' || r == '_' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if len(cleaned) > 64 {
		return decimal.Zero, fmt.Errorf("%w: too long", ErrInvalidAmount)
	}
	// decimal accepts exponents; user amounts never carry one.
	if strings.ContainsAny(cleaned, "eE") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	}
	return d, nil
}
