package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"user@example.com", true},
		{"a@b.co", true},
		{"first.last+tag@mail.example.org", true},
		{"", false},
		{"plain", false},
		{"user@domain", false},
		{"user @example.com", false},
		{"@example.com", false},
		{"user@@example.com", false},
		{strings.Repeat("a", 250) + "@x.io", false},
	}
	for _, tc := range cases {
		v := Email(tc.in)
		assert.Equal(t, tc.ok, v.OK, tc.in)
		if !tc.ok {
			assert.True(t, errors.Is(v.Reason, domain.ErrInvalidEmail))
		}
	}
}

func TestPassword(t *testing.T) {
	v := Password("Abcdefg1")
	assert.True(t, v.OK)
	assert.NoError(t, v.Err())

	v = Password("abcdefgh")
	require.False(t, v.OK)
	assert.True(t, errors.Is(v.Reason, domain.ErrWeakPassword))
	assert.Equal(t, []string{"uppercase", "digit"}, v.Missing)
	assert.Contains(t, v.Err().Error(), "uppercase")
	assert.Contains(t, v.Err().Error(), "digit")

	v = Password("")
	assert.Equal(t, []string{"length", "uppercase", "lowercase", "digit"}, v.Missing)

	v = Password("ÄBCDEFG1")
	assert.Equal(t, []string{"lowercase"}, v.Missing)
}

func TestPasswordConfirmation(t *testing.T) {
	assert.True(t, PasswordConfirmation("Abcdefg1", "Abcdefg1").OK)
	assert.False(t, PasswordConfirmation("Abcdefg1", "Abcdefg2").OK)
	assert.False(t, PasswordConfirmation("", "").OK)
}

func TestName(t *testing.T) {
	assert.True(t, Name("John Doe").OK)
	assert.True(t, Name("Al").OK)
	assert.False(t, Name("J").OK)
	assert.False(t, Name("  ").OK)
	assert.False(t, Name("John3").OK)
	assert.False(t, Name("Renée").OK)
	assert.False(t, Name("O'Brien").OK)
	assert.False(t, Name(strings.Repeat("a", 500)).OK)
	assert.True(t, errors.Is(Name("").Reason, domain.ErrInvalidName))
}

func TestPhoneForCountry(t *testing.T) {
	cases := []struct {
		name    string
		number  string
		country string
		ok      bool
	}{
		{"np_national", "9812345678", "NP", true},
		{"np_national_spaced", "981-234-5678", "NP", true},
		{"np_with_dial_code", "+977 981234567", "NP", true},
		{"np_with_dial_code_no_plus", "977981234567", "NP", true},
		{"np_with_double_zero", "00977 981234567", "NP", true},
		{"np_with_dial_code_thirteen_digits", "+977 9812345678", "NP", false},
		{"np_with_dial_code_no_plus_thirteen_digits", "9779812345678", "NP", false},
		{"np_with_dial_code_eleven_digits", "+977 98123456", "NP", false},
		{"np_wrong_leading_digit", "8812345678", "NP", false},
		{"np_short", "981234567", "NP", false},
		{"np_dial_code_wrong_digit", "+977 8812345678", "NP", false},
		{"np_foreign_international", "+1 555 123 4567", "NP", false},
		{"us_international", "+1 555-123-4567", "US", true},
		{"gb_international", "+44 20 1234 5678", "GB", true},
		{"au_international", "+61 2 1234 5678", "AU", true},
		{"in_international", "+91 98765 43210", "IN", true},
		{"us_national", "(555) 123-4567", "US", true},
		{"us_short", "555-1234", "US", false},
		{"us_international_too_long", "+1 555 123 4567 89012", "US", false},
		{"letters", "+1 555 CALL NOW", "US", false},
		{"empty", "", "US", false},
		{"only_plus", "+", "GB", false},
		{"unicode_digits", "５５５１２３４５６７", "US", false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := PhoneForCountry(tc.number, tc.country)
			assert.Equal(t, tc.ok, v.OK)
			if !tc.ok {
				assert.True(t, errors.Is(v.Reason, domain.ErrInvalidPhone))
			}
		})
	}
}

func TestBankAccount(t *testing.T) {
	assert.True(t, BankAccount("1234567890").OK)
	assert.True(t, BankAccount("1234 5678 9012 3456 7890").OK)
	assert.False(t, BankAccount("123456789").OK)
	assert.False(t, BankAccount("123456789012345678901").OK)
	assert.False(t, BankAccount("").OK)
	assert.False(t, BankAccount(strings.Repeat("1", 100)).OK)
	assert.True(t, errors.Is(BankAccount("x").Reason, domain.ErrInvalidBankAccount))
}

func TestAmount(t *testing.T) {
	min := decimal.NewFromInt(1000)
	max := decimal.NewFromInt(1000000)

	assert.True(t, Amount(min, min, max).OK)
	assert.True(t, Amount(max, min, max).OK)
	assert.True(t, errors.Is(Amount(decimal.NewFromInt(999), min, max).Reason, domain.ErrAmountTooLow))
	assert.True(t, errors.Is(Amount(decimal.NewFromInt(1000001), min, max).Reason, domain.ErrAmountTooHigh))
	assert.True(t, errors.Is(Amount(decimal.Zero, min, max).Reason, domain.ErrInvalidAmount))

	assert.True(t, AmountText("5,000", min, max).OK)
	assert.True(t, errors.Is(AmountText("abc", min, max).Reason, domain.ErrInvalidAmount))
}

func TestAmountForCorridor(t *testing.T) {
	reg := registry.Default()
	assert.True(t, AmountForCorridor(reg, "5000", "US").OK)
	assert.True(t, AmountForCorridor(reg, "5000", "USD").OK)
	assert.Equal(t, "amount_too_low", AmountForCorridor(reg, "500", "USD").Code())
	assert.True(t, errors.Is(AmountForCorridor(reg, "5000", "XXX").Reason, domain.ErrUnknownCurrency))
}

func TestVerdictJSON(t *testing.T) {
	b, err := Password("abcdefgh").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"reason":"weak_password","message":"weak password: missing uppercase, digit","missing":["uppercase","digit"]}`, string(b))

	b, err = Email("a@b.co").MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(b))
}
