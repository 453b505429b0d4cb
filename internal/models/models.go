package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipient is either a saved recipient (ID set) or one entered through the
// new-recipient form.
type Recipient struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	CountryCode   string `json:"country_code"`
	Phone         string `json:"phone,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// Saved reports whether the recipient references a stored entry.
func (r Recipient) Saved() bool {
	return r.ID != ""
}

// Quote is a point-in-time fee/rate/amount breakdown. It is never mutated
// after it has been computed.
type Quote struct {
	SendAmount      decimal.Decimal `json:"send_amount"`
	SourceCurrency  string          `json:"source_currency"`
	TargetCurrency  string          `json:"target_currency"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	FeePercent      decimal.Decimal `json:"fee_percent"`
	Fee             decimal.Decimal `json:"fee"`
	ConvertedAmount decimal.Decimal `json:"converted_amount"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
	FeePolicy       string          `json:"fee_policy"`
	ProcessingTime  string          `json:"processing_time"`
}

// Draft is the in-progress state of a single transfer.
type Draft struct {
	ID             uuid.UUID       `json:"id"`
	Step           string          `json:"step"`
	RawAmount      string          `json:"raw_amount"`
	SendAmount     decimal.Decimal `json:"send_amount"`
	SourceCurrency string          `json:"source_currency"`
	TargetCurrency string          `json:"target_currency"`
	Recipient      *Recipient      `json:"recipient,omitempty"`
	Quote          *Quote          `json:"quote,omitempty"`
	QuoteErr       error           `json:"-"`
	SubmitErr      error           `json:"-"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Confirmation is returned by the submission collaborator on success.
type Confirmation struct {
	Reference   string          `json:"reference"`
	DraftID     uuid.UUID       `json:"draft_id"`
	SendAmount  decimal.Decimal `json:"send_amount"`
	Currency    string          `json:"currency"`
	Recipient   string          `json:"recipient"`
	SubmittedAt time.Time       `json:"submitted_at"`
}
