// Package format renders amounts, phone numbers and labels for display.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Number groups the integer part with commas and keeps at most two decimals.
func Number(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(domain.MoneyScale).InexactFloat64(), number.MaxFractionDigits(domain.MoneyScale)))
}

// Fixed groups the integer part and always prints two decimals.
func Fixed(d decimal.Decimal) string {
	return printer.Sprint(number.Decimal(d.Round(domain.MoneyScale).InexactFloat64(), number.Scale(domain.MoneyScale)))
}

// Amount prefixes the currency symbol from the registry, or the code
// followed by a space when the currency is not registered.
func Amount(reg *registry.Registry, d decimal.Decimal, currencyCode string) string {
	if reg != nil {
		if rec, err := reg.ByCurrencyCode(currencyCode); err == nil {
			return rec.CurrencySymbol + Fixed(d)
		}
	}
	return strings.ToUpper(strings.TrimSpace(currencyCode)) + " " + Fixed(d)
}

// Phone renders a number in spaced international form. Nepal numbers become
// +977 98 1234 5678; inputs with fewer than ten digits are returned as given.
func Phone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return raw
	}

	if strings.HasPrefix(digits, "977") && len(digits) > 9 {
		return "+977 " + digits[3:5] + " " + digits[5:9] + " " + digits[9:]
	}

	n := len(digits)
	local := digits[n-10:n-7] + " " + digits[n-7:n-4] + " " + digits[n-4:]
	if n == 10 {
		return local
	}
	return "+" + digits[:n-10] + " " + local
}

// Truncate shortens s to max runes and appends an ellipsis when it was cut.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}

// MaskAccount hides all but the last four characters of an account number.
func MaskAccount(account string) string {
	account = strings.TrimSpace(account)
	n := utf8.RuneCountInString(account)
	if n <= 4 {
		return account
	}
	runes := []rune(account)
	return strings.Repeat("*", n-4) + string(runes[n-4:])
}
