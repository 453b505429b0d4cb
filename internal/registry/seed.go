package registry

import (
	"fmt"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedRecord is the textual form of a corridor, as found in seed files.
// Numeric fields are strings so rates are never routed through float64.
type SeedRecord struct {
	CountryCode    string `mapstructure:"country_code" json:"country_code"`
	CountryName    string `mapstructure:"country_name" json:"country_name"`
	CurrencyCode   string `mapstructure:"currency_code" json:"currency_code"`
	CurrencyName   string `mapstructure:"currency_name" json:"currency_name"`
	CurrencySymbol string `mapstructure:"currency_symbol" json:"currency_symbol"`
	QuotedRate     string `mapstructure:"quoted_rate" json:"quoted_rate"`
	FeePercent     string `mapstructure:"fee_percent" json:"fee_percent"`
	MinAmount      string `mapstructure:"min_amount" json:"min_amount"`
	MaxAmount      string `mapstructure:"max_amount" json:"max_amount"`
	ProcessingTime string `mapstructure:"processing_time" json:"processing_time"`
}

// Record parses the numeric fields of a seed entry.
func (s SeedRecord) Record() (CorridorRecord, error) {
	rec := CorridorRecord{
		CountryCode:    s.CountryCode,
		CountryName:    s.CountryName,
		CurrencyCode:   s.CurrencyCode,
		CurrencyName:   s.CurrencyName,
		CurrencySymbol: s.CurrencySymbol,
		ProcessingTime: s.ProcessingTime,
	}
	var err error
	if rec.QuotedRate, err = s.parse("quoted_rate", s.QuotedRate); err != nil {
		return CorridorRecord{}, err
	}
	if rec.FeePercent, err = s.parse("fee_percent", s.FeePercent); err != nil {
		return CorridorRecord{}, err
	}
	if rec.MinAmount, err = s.parse("min_amount", s.MinAmount); err != nil {
		return CorridorRecord{}, err
	}
	if rec.MaxAmount, err = s.parse("max_amount", s.MaxAmount); err != nil {
		return CorridorRecord{}, err
	}
	return rec, nil
}

func (s SeedRecord) parse(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("corridor %q: invalid %s %q", s.CountryCode, field, raw)
	}
	return d, nil
}

// FromSeed builds a registry from textual records. The record whose currency
// matches baseCurrency becomes the base; it must be present.
func FromSeed(baseCurrency string, seeds []SeedRecord) (*Registry, error) {
	var (
		base      CorridorRecord
		found     bool
		corridors = make([]CorridorRecord, 0, len(seeds))
	)
	for _, s := range seeds {
		rec, err := s.Record()
		if err != nil {
			return nil, err
		}
		if normalizeCode(rec.CurrencyCode) == normalizeCode(baseCurrency) {
			if found {
				return nil, fmt.Errorf("duplicate currency code %s", rec.CurrencyCode)
			}
			base, found = rec, true
			continue
		}
		corridors = append(corridors, rec)
	}
	if !found {
		return nil, fmt.Errorf("base currency %s missing from seed", baseCurrency)
	}
	return New(base, corridors...)
}

// Default returns the built-in corridor table, quoted against NPR.
func Default() *Registry {
	r, err := FromSeed(domain.BaseCurrency, DefaultSeed())
	if err != nil {
		panic(fmt.Sprintf("registry: invalid built-in seed: %v", err))
	}
	return r
}

// DefaultSeed returns a copy of the built-in corridor table.
func DefaultSeed() []SeedRecord {
	return append([]SeedRecord(nil), defaultSeed...)
}

var defaultSeed = []SeedRecord{
	{"NP", "Nepal", "NPR", "Nepalese Rupee", "Rs", "1", "0", "100", "1000000", "Instant"},
	{"US", "United States", "USD", "US Dollar", "$", "0.0075", "1.5", "1000", "1000000", "1-2 business days"},
	{"GB", "United Kingdom", "GBP", "British Pound", "£", "0.0058", "1.5", "1000", "1000000", "1-2 business days"},
	{"EU", "European Union", "EUR", "Euro", "€", "0.0068", "1.5", "1000", "1000000", "1-2 business days"},
	{"AU", "Australia", "AUD", "Australian Dollar", "A$", "0.011", "1.5", "1000", "1000000", "1-2 business days"},
	{"CA", "Canada", "CAD", "Canadian Dollar", "C$", "0.01", "1.5", "1000", "1000000", "1-2 business days"},
	{"IN", "India", "INR", "Indian Rupee", "₹", "0.62", "1.0", "1000", "1000000", "Same day"},
	{"SG", "Singapore", "SGD", "Singapore Dollar", "S$", "0.01", "1.5", "1000", "1000000", "1-2 business days"},
	{"JP", "Japan", "JPY", "Japanese Yen", "¥", "1.09", "1.5", "1000", "1000000", "1-2 business days"},
	{"KR", "South Korea", "KRW", "South Korean Won", "₩", "9.85", "1.5", "1000", "1000000", "1-2 business days"},
	{"MY", "Malaysia", "MYR", "Malaysian Ringgit", "RM", "0.035", "1.5", "1000", "1000000", "1-2 business days"},
	{"AE", "United Arab Emirates", "AED", "UAE Dirham", "د.إ", "0.028", "1.5", "1000", "1000000", "1-2 business days"},
	{"QA", "Qatar", "QAR", "Qatari Riyal", "ر.ق", "0.027", "1.5", "1000", "1000000", "1-2 business days"},
	{"KW", "Kuwait", "KWD", "Kuwaiti Dinar", "د.ك", "0.0023", "1.5", "1000", "1000000", "1-2 business days"},
	{"IL", "Israel", "ILS", "Israeli Shekel", "₪", "0.027", "1.5", "1000", "1000000", "1-2 business days"},
	{"HK", "Hong Kong", "HKD", "Hong Kong Dollar", "HK$", "0.059", "1.5", "1000", "1000000", "1-2 business days"},
}
