package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/shopspring/decimal"
)

const (
	maxEmailLength   = 254
	minPasswordRunes = 8
	minNameRunes     = 2
	maxNameRunes     = 100

	minBankDigits = 10
	maxBankDigits = 20

	nationalPhoneDigits   = 10
	minInternationalDigit = 11
	maxInternationalDigit = 15

	domesticDialCode = "977"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// Email accepts a conservative local@domain.tld shape.
func Email(email string) Verdict {
	if len(email) > maxEmailLength || !utf8.ValidString(email) || !emailRe.MatchString(email) {
		return fail(domain.ErrInvalidEmail)
	}
	return pass()
}

// Password requires at least eight characters with an upper-case letter, a
// lower-case letter and a digit. Missing lists every rule that was not met.
func Password(password string) Verdict {
	var missing []string
	if utf8.RuneCountInString(password) < minPasswordRunes {
		missing = append(missing, "length")
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !upper {
		missing = append(missing, "uppercase")
	}
	if !lower {
		missing = append(missing, "lowercase")
	}
	if !digit {
		missing = append(missing, "digit")
	}
	if len(missing) > 0 {
		return fail(domain.ErrWeakPassword, missing...)
	}
	return pass()
}

// PasswordConfirmation checks that the confirmation repeats the password.
func PasswordConfirmation(password, confirmation string) Verdict {
	if confirmation == "" || confirmation != password {
		return fail(domain.ErrPasswordMismatch)
	}
	return pass()
}

// Name accepts ASCII letters and spaces, at least two non-blank characters.
func Name(name string) Verdict {
	trimmed := strings.TrimSpace(name)
	if n := utf8.RuneCountInString(trimmed); n < minNameRunes || n > maxNameRunes {
		return fail(domain.ErrInvalidName)
	}
	if !nameRe.MatchString(name) {
		return fail(domain.ErrInvalidName)
	}
	return pass()
}

// Required fails for empty or blank input.
func Required(value string) Verdict {
	if strings.TrimSpace(value) == "" {
		return fail(domain.ErrRequired)
	}
	return pass()
}

// PhoneForCountry applies corridor-specific phone rules. The domestic country
// accepts 9XXXXXXXXX, or 12 digits: the 977 dial code followed by 9 and eight
// more digits. Every other country accepts a
// ten-digit national number or an international number of 11-15 digits
// written with a + or 00 prefix.
func PhoneForCountry(number, countryCode string) Verdict {
	digits, international, ok := normalizePhone(number)
	if !ok {
		return fail(domain.ErrInvalidPhone)
	}

	if strings.EqualFold(strings.TrimSpace(countryCode), domain.DomesticCountry) {
		if !international && len(digits) == nationalPhoneDigits && digits[0] == '9' {
			return pass()
		}
		rest, found := strings.CutPrefix(digits, domesticDialCode)
		if found && len(rest) == nationalPhoneDigits-1 && rest[0] == '9' {
			return pass()
		}
		return fail(domain.ErrInvalidPhone)
	}

	if international {
		if len(digits) >= minInternationalDigit && len(digits) <= maxInternationalDigit {
			return pass()
		}
		return fail(domain.ErrInvalidPhone)
	}
	if len(digits) == nationalPhoneDigits {
		return pass()
	}
	return fail(domain.ErrInvalidPhone)
}

// normalizePhone strips separators and reports whether the number carried an
// international prefix. Letters or other symbols make the number invalid.
func normalizePhone(number string) (digits string, international bool, ok bool) {
	s := strings.TrimSpace(number)
	if len(s) > 32 {
		return "", false, false
	}
	if strings.HasPrefix(s, "+") {
		international = true
		s = s[1:]
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", false, false
		}
	}
	digits = b.String()
	if !international && strings.HasPrefix(digits, "00") {
		international = true
		digits = digits[2:]
	}
	if digits == "" {
		return "", false, false
	}
	return digits, international, true
}

// BankAccount accepts 10 to 20 digits once separators are removed.
func BankAccount(account string) Verdict {
	if len(account) > 64 {
		return fail(domain.ErrInvalidBankAccount)
	}
	n := 0
	for _, r := range account {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	if n < minBankDigits || n > maxBankDigits {
		return fail(domain.ErrInvalidBankAccount)
	}
	return pass()
}

// Amount accepts a positive amount within [min, max] inclusive.
func Amount(amount, min, max decimal.Decimal) Verdict {
	switch {
	case !amount.IsPositive():
		return fail(domain.ErrInvalidAmount)
	case amount.LessThan(min):
		return fail(domain.ErrAmountTooLow)
	case amount.GreaterThan(max):
		return fail(domain.ErrAmountTooHigh)
	}
	return pass()
}

// AmountText parses raw user input before applying Amount.
func AmountText(raw string, min, max decimal.Decimal) Verdict {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return fail(domain.ErrInvalidAmount)
	}
	return Amount(amount, min, max)
}

// AmountForCorridor checks raw input against the bounds of the corridor for a
// country or currency code.
func AmountForCorridor(reg *registry.Registry, raw, code string) Verdict {
	rec, err := reg.Lookup(code)
	if err != nil {
		return fail(domain.ErrUnknownCurrency)
	}
	return AmountText(raw, rec.MinAmount, rec.MaxAmount)
}
