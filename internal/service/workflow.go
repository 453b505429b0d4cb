package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/gateway"
	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/observability"
	"github.com/ayo6706/remittance-engine/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GuardError reports a transition blocked by its guard. Err carries the
// reason and is reachable through errors.Is/As.
type GuardError struct {
	From string
	To   string
	Err  error
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s: %v", e.From, e.To, e.Err)
}

func (e *GuardError) Unwrap() error {
	return e.Err
}

// RecipientError lists the failing fields of a new-recipient form.
type RecipientError struct {
	Form validation.Form
}

func (e *RecipientError) Error() string {
	errs := e.Form.Errors()
	fields := make([]string, 0, len(errs))
	for field, err := range errs {
		fields = append(fields, fmt.Sprintf("%s: %v", field, err))
	}
	sort.Strings(fields)
	return "invalid recipient: " + strings.Join(fields, "; ")
}

func (e *RecipientError) Unwrap() []error {
	errs := e.Form.Errors()
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		out = append(out, err)
	}
	return out
}

type WorkflowOption func(*Workflow)

func WithLogger(logger *zap.Logger) WorkflowOption {
	return func(w *Workflow) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithFeePolicy selects how fees are applied to every quote of the workflow.
// Unknown policies fall back to the fee-deducted default.
func WithFeePolicy(policy string) WorkflowOption {
	return func(w *Workflow) {
		if p, err := ParseFeePolicy(policy); err == nil {
			w.feePolicy = p
		}
	}
}

func WithRecipientDirectory(dir *RecipientDirectory) WorkflowOption {
	return func(w *Workflow) {
		w.recipients = dir
	}
}

func WithClock(now func() time.Time) WorkflowOption {
	return func(w *Workflow) {
		if now != nil {
			w.now = now
		}
	}
}

// Workflow sequences one send-money flow: AMOUNT -> RECIPIENT -> REVIEW ->
// SUBMITTED. It owns at most one draft and is not safe for concurrent use.
type Workflow struct {
	quotes     *QuoteService
	submitter  gateway.Submitter
	recipients *RecipientDirectory
	feePolicy  string
	logger     *zap.Logger
	now        func() time.Time

	draft        *models.Draft
	confirmation *models.Confirmation
}

func NewWorkflow(quotes *QuoteService, submitter gateway.Submitter, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		quotes:    quotes,
		submitter: submitter,
		feePolicy: domain.FeePolicyDeducted,
		logger:    zap.NewNop(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start opens a fresh draft in AMOUNT, replacing any previous one. The target
// may be given as a country or currency code.
func (w *Workflow) Start(sourceCurrency, target string) (models.Draft, error) {
	src, err := lookupCurrency(w.quotes.Registry(), sourceCurrency)
	if err != nil {
		return models.Draft{}, err
	}
	dst, err := w.quotes.Registry().Lookup(target)
	if err != nil {
		return models.Draft{}, unknownCurrency(target)
	}

	w.confirmation = nil
	w.draft = &models.Draft{
		ID:             uuid.New(),
		Step:           domain.StepAmount,
		SourceCurrency: src.CurrencyCode,
		TargetCurrency: dst.CurrencyCode,
		CreatedAt:      w.now().UTC(),
	}
	w.logger.Debug("transfer draft started",
		zap.String("draft_id", w.draft.ID.String()),
		zap.String("source", src.CurrencyCode),
		zap.String("target", dst.CurrencyCode),
	)
	return w.snapshot(), nil
}

// Draft returns a copy of the current draft.
func (w *Workflow) Draft() (models.Draft, error) {
	if w.draft == nil {
		return models.Draft{}, domain.ErrNoDraft
	}
	return w.snapshot(), nil
}

// Step reports the current step, SUBMITTED after a successful submission and
// "" when there is no draft.
func (w *Workflow) Step() string {
	switch {
	case w.draft != nil:
		return w.draft.Step
	case w.confirmation != nil:
		return domain.StepSubmitted
	default:
		return ""
	}
}

// Confirmation is set once the draft has been submitted.
func (w *Workflow) Confirmation() *models.Confirmation {
	if w.confirmation == nil {
		return nil
	}
	c := *w.confirmation
	return &c
}

// SetAmount stores the raw amount text and recomputes the quote. A parse or
// bounds failure is recorded on the draft as QuoteErr rather than returned.
func (w *Workflow) SetAmount(raw string) (models.Draft, error) {
	if err := w.requireStep(domain.StepAmount); err != nil {
		return models.Draft{}, err
	}
	w.draft.RawAmount = raw
	w.recompute()
	return w.snapshot(), nil
}

// SetTargetCurrency switches the destination corridor. An unknown code is
// rejected and the previous target kept.
func (w *Workflow) SetTargetCurrency(code string) (models.Draft, error) {
	if err := w.requireStep(domain.StepAmount); err != nil {
		return models.Draft{}, err
	}
	rec, err := w.quotes.Registry().Lookup(code)
	if err != nil {
		return w.snapshot(), unknownCurrency(code)
	}
	w.draft.TargetCurrency = rec.CurrencyCode
	w.recompute()
	return w.snapshot(), nil
}

// SetRecipient selects a saved recipient by ID or accepts a new-recipient
// form. New recipients default to the target corridor's country.
func (w *Workflow) SetRecipient(r models.Recipient) (models.Draft, error) {
	if err := w.requireStep(domain.StepRecipient); err != nil {
		return models.Draft{}, err
	}

	if r.Saved() {
		if w.recipients == nil {
			return w.snapshot(), fmt.Errorf("%w: recipient %q", domain.ErrNotFound, r.ID)
		}
		saved, err := w.recipients.Get(r.ID)
		if err != nil {
			return w.snapshot(), err
		}
		w.draft.Recipient = &saved
		return w.snapshot(), nil
	}

	if strings.TrimSpace(r.CountryCode) == "" {
		if rec, err := w.quotes.Registry().ByCurrencyCode(w.draft.TargetCurrency); err == nil {
			r.CountryCode = rec.CountryCode
		}
	}
	form := validation.RecipientForm{
		Name:          r.Name,
		CountryCode:   r.CountryCode,
		Phone:         r.Phone,
		BankName:      r.BankName,
		AccountNumber: r.AccountNumber,
	}.Validate()
	if !form.Valid() {
		return w.snapshot(), &RecipientError{Form: form}
	}

	r.Name = strings.TrimSpace(r.Name)
	r.CountryCode = strings.ToUpper(strings.TrimSpace(r.CountryCode))
	w.draft.Recipient = &r
	return w.snapshot(), nil
}

// Advance moves one step forward if the current step's guard passes.
func (w *Workflow) Advance() (models.Draft, error) {
	if w.draft == nil {
		return models.Draft{}, domain.ErrNoDraft
	}
	from := w.draft.Step
	to, ok := nextStep[from]
	if !ok || !canTransition(from, to) {
		return w.snapshot(), fmt.Errorf("%w: cannot advance from %s", domain.ErrInvalidTransition, from)
	}
	if err := w.guard(from); err != nil {
		gerr := &GuardError{From: from, To: to, Err: err}
		w.logger.Debug("workflow guard rejected transition", zap.Error(gerr))
		observability.IncrementGuardRejection(from, domain.Kind(err))
		return w.snapshot(), gerr
	}
	w.transition(to)
	return w.snapshot(), nil
}

// Back moves one step backwards. Data entered so far is kept.
func (w *Workflow) Back() (models.Draft, error) {
	if w.draft == nil {
		return models.Draft{}, domain.ErrNoDraft
	}
	from := w.draft.Step
	to, ok := previousStep[from]
	if !ok || !canTransition(from, to) {
		return w.snapshot(), fmt.Errorf("%w: cannot go back from %s", domain.ErrInvalidTransition, from)
	}
	w.transition(to)
	return w.snapshot(), nil
}

// Submit hands the draft to the submission collaborator. On success the draft
// is discarded and the confirmation kept. On failure the draft stays in REVIEW
// with SubmitErr set. Submitting again after success returns the held
// confirmation without contacting the collaborator.
func (w *Workflow) Submit(ctx context.Context) (*models.Confirmation, error) {
	if w.draft == nil && w.confirmation != nil {
		return w.Confirmation(), nil
	}
	if err := w.requireStep(domain.StepReview); err != nil {
		return nil, err
	}
	if err := w.guard(domain.StepAmount); err != nil {
		return nil, &GuardError{From: domain.StepReview, To: domain.StepSubmitted, Err: err}
	}
	if err := w.guard(domain.StepRecipient); err != nil {
		return nil, &GuardError{From: domain.StepReview, To: domain.StepSubmitted, Err: err}
	}

	w.draft.SubmitErr = nil
	conf, err := w.submitter.Submit(ctx, w.snapshot())
	if err != nil {
		w.draft.SubmitErr = fmt.Errorf("%w: %w", domain.ErrSubmission, err)
		observability.IncrementSubmission("failed")
		w.logger.Warn("transfer submission failed",
			zap.String("draft_id", w.draft.ID.String()),
			zap.Error(err),
		)
		return nil, w.draft.SubmitErr
	}

	observability.IncrementSubmission("ok")
	observability.IncrementTransition(domain.StepReview, domain.StepSubmitted)
	w.logger.Info("transfer submitted",
		zap.String("draft_id", w.draft.ID.String()),
		zap.String("reference", conf.Reference),
	)
	w.confirmation = conf
	w.draft = nil
	return w.Confirmation(), nil
}

// Cancel discards the draft from any step.
func (w *Workflow) Cancel() error {
	if w.draft == nil {
		return domain.ErrNoDraft
	}
	w.logger.Debug("transfer draft cancelled",
		zap.String("draft_id", w.draft.ID.String()),
		zap.String("step", w.draft.Step),
	)
	w.draft = nil
	w.confirmation = nil
	return nil
}

func (w *Workflow) requireStep(step string) error {
	if w.draft == nil {
		return domain.ErrNoDraft
	}
	if w.draft.Step != step {
		return fmt.Errorf("%w: in %s, need %s", domain.ErrWrongStep, w.draft.Step, step)
	}
	return nil
}

// guard returns the reason the draft may not leave step, or nil.
func (w *Workflow) guard(step string) error {
	switch step {
	case domain.StepAmount:
		if w.draft.QuoteErr != nil {
			return w.draft.QuoteErr
		}
		if w.draft.Quote == nil {
			return fmt.Errorf("%w: amount is required", domain.ErrInvalidAmount)
		}
	case domain.StepRecipient:
		if w.draft.Recipient == nil {
			return domain.ErrRecipientRequired
		}
	}
	return nil
}

func (w *Workflow) transition(to string) {
	from := w.draft.Step
	w.draft.Step = to
	observability.IncrementTransition(from, to)
	w.logger.Debug("workflow transition",
		zap.String("draft_id", w.draft.ID.String()),
		zap.String("from", from),
		zap.String("to", to),
	)
}

// recompute swaps in a fresh quote for the current amount and target. Blank
// amount text clears the quote without recording an error.
func (w *Workflow) recompute() {
	d := w.draft
	d.Quote = nil
	d.QuoteErr = nil
	d.SendAmount = decimal.Zero

	if strings.TrimSpace(d.RawAmount) == "" {
		return
	}
	amount, err := domain.ParseAmount(d.RawAmount)
	if err != nil {
		d.QuoteErr = err
		observability.IncrementQuote(d.TargetCurrency, QuoteResult(err))
		return
	}
	d.SendAmount = amount

	quote, err := w.quotes.ComputeWithPolicy(amount, d.SourceCurrency, d.TargetCurrency, w.feePolicy)
	observability.IncrementQuote(d.TargetCurrency, QuoteResult(err))
	if err != nil {
		d.QuoteErr = err
		return
	}
	d.Quote = quote
}

func (w *Workflow) snapshot() models.Draft {
	d := *w.draft
	if d.Recipient != nil {
		r := *d.Recipient
		d.Recipient = &r
	}
	if d.Quote != nil {
		q := *d.Quote
		d.Quote = &q
	}
	return d
}
