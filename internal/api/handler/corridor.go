package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type corridorView struct {
	CountryCode    string          `json:"country_code"`
	CountryName    string          `json:"country_name"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencyName   string          `json:"currency_name"`
	CurrencySymbol string          `json:"currency_symbol"`
	QuotedRate     decimal.Decimal `json:"quoted_rate"`
	FeePercent     decimal.Decimal `json:"fee_percent"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	ProcessingTime string          `json:"processing_time"`
}

func toCorridorView(rec registry.CorridorRecord) corridorView {
	return corridorView{
		CountryCode:    rec.CountryCode,
		CountryName:    rec.CountryName,
		CurrencyCode:   rec.CurrencyCode,
		CurrencyName:   rec.CurrencyName,
		CurrencySymbol: rec.CurrencySymbol,
		QuotedRate:     rec.QuotedRate,
		FeePercent:     rec.FeePercent,
		MinAmount:      rec.MinAmount,
		MaxAmount:      rec.MaxAmount,
		ProcessingTime: rec.ProcessingTime,
	}
}

type CorridorHandler struct {
	registry *registry.Registry
	rates    *service.RegistryRateService
}

func NewCorridorHandler(reg *registry.Registry, rates *service.RegistryRateService) *CorridorHandler {
	return &CorridorHandler{registry: reg, rates: rates}
}

// List returns every corridor in registration order, base currency first.
func (h *CorridorHandler) List(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()
	out := make([]corridorView, 0, len(all))
	for _, rec := range all {
		out = append(out, toCorridorView(rec))
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"base":      h.registry.Base().CurrencyCode,
		"corridors": out,
	})
}

// Get resolves a corridor by country or currency code.
func (h *CorridorHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.registry.Lookup(chi.URLParam(r, "code"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, toCorridorView(rec))
}

// Rates lists destination rates quoted from ?source=, defaulting to the base.
func (h *CorridorHandler) Rates(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = h.registry.Base().CurrencyCode
	}
	board, err := h.rates.Board(source)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"source": source,
		"rates":  board,
	})
}
