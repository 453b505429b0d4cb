package service

import (
	"fmt"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/shopspring/decimal"
)

// BoundsError reports a send amount outside the target corridor's limits.
// It matches domain.ErrAmountTooLow or domain.ErrAmountTooHigh via errors.Is.
type BoundsError struct {
	Kind     error
	Amount   decimal.Decimal
	Min      decimal.Decimal
	Max      decimal.Decimal
	Currency string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: %s %s outside [%s, %s]",
		e.Kind, e.Amount.StringFixed(domain.MoneyScale), e.Currency,
		e.Min.StringFixed(domain.MoneyScale), e.Max.StringFixed(domain.MoneyScale))
}

func (e *BoundsError) Unwrap() error {
	return e.Kind
}

// ParseFeePolicy normalises a fee policy name. Blank selects the default.
func ParseFeePolicy(policy string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", domain.FeePolicyDeducted:
		return domain.FeePolicyDeducted, nil
	case domain.FeePolicyOnTop:
		return domain.FeePolicyOnTop, nil
	default:
		return "", fmt.Errorf("unknown fee policy %q", policy)
	}
}

// QuoteService is the transfer calculation engine. It holds no mutable state.
type QuoteService struct {
	registry *registry.Registry
	fxRates  ExchangeRateService
}

func NewQuoteService(reg *registry.Registry, fxRates ExchangeRateService) *QuoteService {
	if fxRates == nil {
		fxRates = NewRegistryRateService(reg)
	}
	return &QuoteService{
		registry: reg,
		fxRates:  fxRates,
	}
}

func (s *QuoteService) Registry() *registry.Registry {
	return s.registry
}

// Compute quotes a transfer with the fee deducted from the send amount:
// converted = round2((amount - fee) * rate), total payable = amount.
func (s *QuoteService) Compute(amount decimal.Decimal, source, target string) (*models.Quote, error) {
	return s.ComputeWithPolicy(amount, source, target, domain.FeePolicyDeducted)
}

// ComputeFeeOnTop quotes a transfer with the fee charged on top:
// converted = round2(amount * rate), total payable = amount + fee.
func (s *QuoteService) ComputeFeeOnTop(amount decimal.Decimal, source, target string) (*models.Quote, error) {
	return s.ComputeWithPolicy(amount, source, target, domain.FeePolicyOnTop)
}

func (s *QuoteService) ComputeWithPolicy(amount decimal.Decimal, source, target, policy string) (*models.Quote, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount.String())
	}
	policy, err := ParseFeePolicy(policy)
	if err != nil {
		return nil, err
	}

	src, err := lookupCurrency(s.registry, source)
	if err != nil {
		return nil, err
	}
	dst, err := lookupCurrency(s.registry, target)
	if err != nil {
		return nil, err
	}

	rate, err := s.fxRates.GetExchangeRate(src.CurrencyCode, dst.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("exchange rate %s -> %s: %w", src.CurrencyCode, dst.CurrencyCode, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%w: no rate for %s -> %s", domain.ErrUnknownCurrency, src.CurrencyCode, dst.CurrencyCode)
	}

	if amount.LessThan(dst.MinAmount) {
		return nil, &BoundsError{Kind: domain.ErrAmountTooLow, Amount: amount, Min: dst.MinAmount, Max: dst.MaxAmount, Currency: src.CurrencyCode}
	}
	if amount.GreaterThan(dst.MaxAmount) {
		return nil, &BoundsError{Kind: domain.ErrAmountTooHigh, Amount: amount, Min: dst.MinAmount, Max: dst.MaxAmount, Currency: src.CurrencyCode}
	}

	fee := domain.Percent(amount, dst.FeePercent)
	quote := &models.Quote{
		SendAmount:     amount,
		SourceCurrency: src.CurrencyCode,
		TargetCurrency: dst.CurrencyCode,
		ExchangeRate:   rate,
		FeePercent:     dst.FeePercent,
		Fee:            fee,
		FeePolicy:      policy,
		ProcessingTime: dst.ProcessingTime,
	}

	send := domain.NewMoney(amount, src.CurrencyCode)
	switch policy {
	case domain.FeePolicyOnTop:
		quote.ConvertedAmount = send.Convert(dst.CurrencyCode, rate).Amount
		quote.TotalPayable = domain.Round2(amount.Add(fee))
	default:
		net, err := send.Sub(domain.NewMoney(fee, src.CurrencyCode))
		if err != nil {
			return nil, err
		}
		quote.ConvertedAmount = net.Convert(dst.CurrencyCode, rate).Amount
		quote.TotalPayable = amount
	}
	return quote, nil
}

// ComputeText parses user-entered amount text and quotes it.
func (s *QuoteService) ComputeText(raw, source, target, policy string) (*models.Quote, error) {
	amount, err := domain.ParseAmount(raw)
	if err != nil {
		return nil, err
	}
	return s.ComputeWithPolicy(amount, source, target, policy)
}

// QuoteResult is the metric label for a quote outcome.
func QuoteResult(err error) string {
	if err == nil {
		return "ok"
	}
	if kind := domain.Kind(err); kind != "" {
		return kind
	}
	return "error"
}
