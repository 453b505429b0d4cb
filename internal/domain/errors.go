package domain

import "errors"

// Registry
var (
	ErrNotFound = errors.New("corridor not found")
)

// Calculation
var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrAmountTooLow    = errors.New("amount below corridor minimum")
	ErrAmountTooHigh   = errors.New("amount above corridor maximum")
)

// Validation
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("weak password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrInvalidBankAccount = errors.New("invalid bank account")
	ErrRequired           = errors.New("field is required")
)

// Workflow
var (
	ErrInvalidTransition = errors.New("invalid workflow transition")
	ErrWrongStep         = errors.New("operation not allowed in current step")
	ErrNoDraft           = errors.New("no transfer in progress")
	ErrRecipientRequired = errors.New("recipient is required")
	ErrSubmission        = errors.New("transfer submission failed")
)

// Kind returns a stable machine-readable code for a known error, or "" otherwise.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}
	return ""
}

var kinds = []struct {
	err  error
	code string
}{
	{ErrNotFound, "not_found"},
	{ErrUnknownCurrency, "unknown_currency"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrAmountTooLow, "amount_too_low"},
	{ErrAmountTooHigh, "amount_too_high"},
	{ErrInvalidEmail, "invalid_email"},
	{ErrWeakPassword, "weak_password"},
	{ErrPasswordMismatch, "password_mismatch"},
	{ErrInvalidName, "invalid_name"},
	{ErrInvalidPhone, "invalid_phone"},
	{ErrInvalidBankAccount, "invalid_bank_account"},
	{ErrRequired, "required"},
	{ErrInvalidTransition, "invalid_transition"},
	{ErrWrongStep, "wrong_step"},
	{ErrNoDraft, "no_draft"},
	{ErrRecipientRequired, "recipient_required"},
	{ErrSubmission, "submission_failed"},
}
