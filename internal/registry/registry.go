package registry

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CorridorRecord holds the reference data for one destination country/currency.
// QuotedRate is expressed against the registry's base currency.
type CorridorRecord struct {
	CountryCode    string          `json:"country_code" validate:"required,countrycode"`
	CountryName    string          `json:"country_name" validate:"required"`
	CurrencyCode   string          `json:"currency_code" validate:"required,currencycode"`
	CurrencyName   string          `json:"currency_name"`
	CurrencySymbol string          `json:"currency_symbol" validate:"required"`
	QuotedRate     decimal.Decimal `json:"quoted_rate"`
	FeePercent     decimal.Decimal `json:"fee_percent"`
	MinAmount      decimal.Decimal `json:"min_amount"`
	MaxAmount      decimal.Decimal `json:"max_amount"`
	ProcessingTime string          `json:"processing_time"`
}

// Registry is an immutable lookup table of corridor records keyed by country
// code and by currency code. It is safe for concurrent reads.
type Registry struct {
	base       CorridorRecord
	records    []CorridorRecord
	byCountry  map[string]int
	byCurrency map[string]int
}

var (
	countryCodeRe  = regexp.MustCompile(`^[A-Z]{2}$`)
	currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

	recordValidator = newRecordValidator()
	hundred         = decimal.NewFromInt(100)
)

func newRecordValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("countrycode", func(fl validator.FieldLevel) bool {
		return countryCodeRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodeRe.MatchString(fl.Field().String())
	})
	return v
}

// New builds a registry from a base currency record and the destination
// corridors. The base record must be quoted at exactly 1 and is registered
// first. Every record is validated; duplicate keys are rejected.
func New(base CorridorRecord, corridors ...CorridorRecord) (*Registry, error) {
	if !base.QuotedRate.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("base currency %s must be quoted at 1, got %s", base.CurrencyCode, base.QuotedRate)
	}

	r := &Registry{
		byCountry:  make(map[string]int, len(corridors)+1),
		byCurrency: make(map[string]int, len(corridors)+1),
	}
	for _, rec := range append([]CorridorRecord{base}, corridors...) {
		if err := r.add(rec); err != nil {
			return nil, err
		}
	}
	r.base = r.records[0]
	return r, nil
}

func (r *Registry) add(rec CorridorRecord) error {
	rec.CountryCode = normalizeCode(rec.CountryCode)
	rec.CurrencyCode = normalizeCode(rec.CurrencyCode)
	if err := Validate(rec); err != nil {
		return err
	}
	if _, dup := r.byCountry[rec.CountryCode]; dup {
		return fmt.Errorf("duplicate country code %s", rec.CountryCode)
	}
	if _, dup := r.byCurrency[rec.CurrencyCode]; dup {
		return fmt.Errorf("duplicate currency code %s", rec.CurrencyCode)
	}
	r.records = append(r.records, rec)
	r.byCountry[rec.CountryCode] = len(r.records) - 1
	r.byCurrency[rec.CurrencyCode] = len(r.records) - 1
	return nil
}

// Validate checks the shape and numeric invariants of a single record.
func Validate(rec CorridorRecord) error {
	if err := recordValidator.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("corridor %q: field %s failed %q", rec.CountryCode, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("corridor %q: %w", rec.CountryCode, err)
	}
	switch {
	case !rec.QuotedRate.IsPositive():
		return fmt.Errorf("corridor %s: quoted rate must be positive", rec.CountryCode)
	case rec.FeePercent.IsNegative() || rec.FeePercent.GreaterThanOrEqual(hundred):
		return fmt.Errorf("corridor %s: fee percent must be in [0, 100)", rec.CountryCode)
	case !rec.MinAmount.IsPositive():
		return fmt.Errorf("corridor %s: min amount must be positive", rec.CountryCode)
	case !rec.MinAmount.LessThan(rec.MaxAmount):
		return fmt.Errorf("corridor %s: min amount must be below max amount", rec.CountryCode)
	}
	return nil
}

// ByCountryCode returns the corridor registered for a country code.
func (r *Registry) ByCountryCode(code string) (CorridorRecord, error) {
	idx, ok := r.byCountry[normalizeCode(code)]
	if !ok {
		return CorridorRecord{}, fmt.Errorf("%w: country %q", domain.ErrNotFound, code)
	}
	return r.records[idx], nil
}

// ByCurrencyCode returns the corridor registered for a currency code.
func (r *Registry) ByCurrencyCode(code string) (CorridorRecord, error) {
	idx, ok := r.byCurrency[normalizeCode(code)]
	if !ok {
		return CorridorRecord{}, fmt.Errorf("%w: currency %q", domain.ErrNotFound, code)
	}
	return r.records[idx], nil
}

// Lookup resolves either a country code or a currency code.
func (r *Registry) Lookup(code string) (CorridorRecord, error) {
	if rec, err := r.ByCountryCode(code); err == nil {
		return rec, nil
	}
	return r.ByCurrencyCode(code)
}

// All returns every record in registration order. The slice is a copy.
func (r *Registry) All() []CorridorRecord {
	out := make([]CorridorRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Destinations returns every record except the base currency.
func (r *Registry) Destinations() []CorridorRecord {
	return append([]CorridorRecord(nil), r.records[1:]...)
}

// Base returns the base currency record.
func (r *Registry) Base() CorridorRecord {
	return r.base
}

// Len reports the number of registered records, base included.
func (r *Registry) Len() int {
	return len(r.records)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
