package service

import (
	"fmt"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/shopspring/decimal"
)

// ExchangeRateService defines the interface for fetching FX rates.
type ExchangeRateService interface {
	// GetExchangeRate returns the rate to convert from source to target currency.
	GetExchangeRate(sourceCurrency, targetCurrency string) (decimal.Decimal, error)
}

// RegistryRateService derives cross rates from the corridor registry. Every
// quoted rate is expressed against the registry base, so
// source -> target = target.QuotedRate / source.QuotedRate.
type RegistryRateService struct {
	registry *registry.Registry
}

func NewRegistryRateService(reg *registry.Registry) *RegistryRateService {
	return &RegistryRateService{registry: reg}
}

func (s *RegistryRateService) GetExchangeRate(source, target string) (decimal.Decimal, error) {
	src, err := lookupCurrency(s.registry, source)
	if err != nil {
		return decimal.Zero, err
	}
	dst, err := lookupCurrency(s.registry, target)
	if err != nil {
		return decimal.Zero, err
	}
	if src.CurrencyCode == dst.CurrencyCode {
		return decimal.NewFromInt(1), nil
	}
	return dst.QuotedRate.Div(src.QuotedRate), nil
}

// RateBoardEntry is one row of the rate board shown on the home screen.
type RateBoardEntry struct {
	CountryCode    string          `json:"country_code"`
	CountryName    string          `json:"country_name"`
	CurrencyCode   string          `json:"currency_code"`
	CurrencySymbol string          `json:"currency_symbol"`
	Rate           decimal.Decimal `json:"rate"`
	FeePercent     decimal.Decimal `json:"fee_percent"`
	ProcessingTime string          `json:"processing_time"`
}

// Board lists every destination corridor with its rate from source.
func (s *RegistryRateService) Board(source string) ([]RateBoardEntry, error) {
	src, err := lookupCurrency(s.registry, source)
	if err != nil {
		return nil, err
	}

	destinations := s.registry.Destinations()
	board := make([]RateBoardEntry, 0, len(destinations))
	for _, rec := range destinations {
		if rec.CurrencyCode == src.CurrencyCode {
			continue
		}
		board = append(board, RateBoardEntry{
			CountryCode:    rec.CountryCode,
			CountryName:    rec.CountryName,
			CurrencyCode:   rec.CurrencyCode,
			CurrencySymbol: rec.CurrencySymbol,
			Rate:           rec.QuotedRate.Div(src.QuotedRate),
			FeePercent:     rec.FeePercent,
			ProcessingTime: rec.ProcessingTime,
		})
	}
	return board, nil
}

func lookupCurrency(reg *registry.Registry, code string) (registry.CorridorRecord, error) {
	rec, err := reg.ByCurrencyCode(code)
	if err != nil {
		return registry.CorridorRecord{}, unknownCurrency(code)
	}
	return rec, nil
}

func unknownCurrency(code string) error {
	return fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, strings.ToUpper(strings.TrimSpace(code)))
}
