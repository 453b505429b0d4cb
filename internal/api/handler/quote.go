package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/observability"
	"github.com/ayo6706/remittance-engine/internal/service"
)

// unknownTargetLabel stands in for targets outside the registry so client
// input never becomes a metric label.
const unknownTargetLabel = "unknown"

type QuoteHandler struct {
	quotes         *service.QuoteService
	sourceCurrency string
	feePolicy      string
}

func NewQuoteHandler(quotes *service.QuoteService, sourceCurrency, feePolicy string) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, sourceCurrency: sourceCurrency, feePolicy: feePolicy}
}

type quoteRequest struct {
	Amount         string `json:"amount" validate:"required,max=64"`
	SourceCurrency string `json:"source_currency" validate:"omitempty,len=3,alpha"`
	TargetCurrency string `json:"target_currency" validate:"required,min=2,max=3,alpha"`
	FeePolicy      string `json:"fee_policy" validate:"omitempty,oneof=deducted on_top"`
}

// Create computes a one-off quote without opening a transfer draft.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[quoteRequest](w, r)
	if !ok {
		return
	}
	source := req.SourceCurrency
	if source == "" {
		source = h.sourceCurrency
	}
	policy := req.FeePolicy
	if policy == "" {
		policy = h.feePolicy
	}

	target := req.TargetCurrency
	targetLabel := unknownTargetLabel
	if rec, err := h.quotes.Registry().Lookup(target); err == nil {
		target = rec.CurrencyCode
		targetLabel = target
	}

	quote, err := h.quotes.ComputeText(req.Amount, source, target, policy)
	observability.IncrementQuote(targetLabel, service.QuoteResult(err))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, quote)
}
