package validation

import (
	"errors"
	"testing"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoginForm(t *testing.T) {
	form := LoginForm{Email: "user@example.com", Password: "password"}.Validate()
	assert.True(t, form.Valid(), "login does not enforce strength rules")

	form = LoginForm{Email: "", Password: "short"}.Validate()
	assert.False(t, form.Valid())
	errs := form.Errors()
	assert.True(t, errors.Is(errs[FieldEmail], domain.ErrRequired))
	assert.True(t, errors.Is(errs[FieldPassword], domain.ErrWeakPassword))
}

func TestSignupForm(t *testing.T) {
	valid := SignupForm{
		FullName:        "Sita Sharma",
		Email:           "sita@example.com",
		Password:        "Abcdefg1",
		ConfirmPassword: "Abcdefg1",
	}
	assert.True(t, valid.Validate().Valid())

	mismatch := valid
	mismatch.ConfirmPassword = "Abcdefg2"
	errs := mismatch.Validate().Errors()
	assert.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[FieldConfirmPassword], domain.ErrPasswordMismatch))

	weak := valid
	weak.Password = "abcdefgh"
	weak.ConfirmPassword = "abcdefgh"
	errs = weak.Validate().Errors()
	assert.True(t, errors.Is(errs[FieldPassword], domain.ErrWeakPassword))
}

func TestForgotPasswordForm(t *testing.T) {
	assert.True(t, ForgotPasswordForm{Email: "a@b.co"}.Validate().Valid())
	assert.False(t, ForgotPasswordForm{Email: "nope"}.Validate().Valid())
}

func TestRecipientForm(t *testing.T) {
	form := RecipientForm{Name: "John Doe", CountryCode: "US", Phone: "+1 555-123-4567"}.Validate()
	assert.True(t, form.Valid())
	_, hasBank := form[FieldBankAccount]
	assert.False(t, hasBank, "bank account is optional")

	form = RecipientForm{Name: "John Doe", CountryCode: "US", Phone: "+1 555-123-4567", AccountNumber: "123"}.Validate()
	assert.False(t, form.Valid())
	assert.True(t, errors.Is(form.Errors()[FieldBankAccount], domain.ErrInvalidBankAccount))

	form = RecipientForm{Name: "Ram", CountryCode: "NP", Phone: "+1 555-123-4567"}.Validate()
	assert.True(t, errors.Is(form.Errors()[FieldPhone], domain.ErrInvalidPhone))
}
