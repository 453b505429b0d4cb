package domain

// Reference data defaults (must match registry.Default seed)
const (
	BaseCurrency    = "NPR"
	BaseCountry     = "NP"
	DomesticCountry = "NP"

	MoneyScale = 2

	FeePolicyDeducted = "deducted"
	FeePolicyOnTop    = "on_top"

	// Workflow steps
	StepAmount    = "AMOUNT"
	StepRecipient = "RECIPIENT"
	StepReview    = "REVIEW"
	StepSubmitted = "SUBMITTED"
)
