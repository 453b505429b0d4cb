package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/format"
	"github.com/ayo6706/remittance-engine/internal/models"
	"github.com/ayo6706/remittance-engine/internal/registry"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/ayo6706/remittance-engine/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransferHandler struct {
	sessions       *session.Store
	registry       *registry.Registry
	sourceCurrency string
}

func NewTransferHandler(sessions *session.Store, reg *registry.Registry, sourceCurrency string) *TransferHandler {
	return &TransferHandler{sessions: sessions, registry: reg, sourceCurrency: sourceCurrency}
}

type quoteDisplay struct {
	SendAmount      string `json:"send_amount"`
	Fee             string `json:"fee"`
	ConvertedAmount string `json:"converted_amount"`
	TotalPayable    string `json:"total_payable"`
}

type draftView struct {
	models.Draft
	QuoteError  *errorView    `json:"quote_error,omitempty"`
	SubmitError *errorView    `json:"submit_error,omitempty"`
	Display     *quoteDisplay `json:"display,omitempty"`
}

func (h *TransferHandler) view(d models.Draft) draftView {
	v := draftView{
		Draft:       d,
		QuoteError:  newErrorView(d.QuoteErr),
		SubmitError: newErrorView(d.SubmitErr),
	}
	if q := d.Quote; q != nil {
		v.Display = &quoteDisplay{
			SendAmount:      format.Amount(h.registry, q.SendAmount, q.SourceCurrency),
			Fee:             format.Amount(h.registry, q.Fee, q.SourceCurrency),
			ConvertedAmount: format.Amount(h.registry, q.ConvertedAmount, q.TargetCurrency),
			TotalPayable:    format.Amount(h.registry, q.TotalPayable, q.SourceCurrency),
		}
	}
	return v
}

type startRequest struct {
	TargetCurrency string `json:"target_currency" validate:"required,min=2,max=3,alpha"`
	Amount         string `json:"amount" validate:"max=64"`
}

// Start opens a new draft owned by the caller, optionally seeding the amount.
func (h *TransferHandler) Start(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestOwner(r)
	if !ok {
		RespondError(w, r, http.StatusUnauthorized, "auth/unauthorized", "missing user in auth context")
		return
	}
	req, ok := decodeAndValidate[startRequest](w, r)
	if !ok {
		return
	}

	draft, err := h.sessions.Create(owner, h.sourceCurrency, req.TargetCurrency)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if req.Amount != "" {
		err = h.sessions.With(owner, draft.ID, func(wf *service.Workflow) error {
			var err error
			draft, err = wf.SetAmount(req.Amount)
			return err
		})
		if err != nil {
			writeDomainError(w, r, err)
			return
		}
	}
	RespondJSON(w, http.StatusCreated, h.view(draft))
}

// Get returns the draft, or the confirmation once it has been submitted.
func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.withWorkflow(w, r, http.StatusOK, func(wf *service.Workflow) (interface{}, error) {
		if conf := wf.Confirmation(); conf != nil {
			return map[string]interface{}{"step": wf.Step(), "confirmation": conf}, nil
		}
		d, err := wf.Draft()
		if err != nil {
			return nil, err
		}
		return h.view(d), nil
	})
}

type amountRequest struct {
	Amount string `json:"amount" validate:"max=64"`
}

func (h *TransferHandler) SetAmount(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[amountRequest](w, r)
	if !ok {
		return
	}
	h.withDraft(w, r, func(wf *service.Workflow) (models.Draft, error) {
		return wf.SetAmount(req.Amount)
	})
}

type targetRequest struct {
	TargetCurrency string `json:"target_currency" validate:"required,min=2,max=3,alpha"`
}

func (h *TransferHandler) SetTarget(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[targetRequest](w, r)
	if !ok {
		return
	}
	h.withDraft(w, r, func(wf *service.Workflow) (models.Draft, error) {
		return wf.SetTargetCurrency(req.TargetCurrency)
	})
}

type recipientRequest struct {
	ID            string `json:"id" validate:"max=64"`
	Name          string `json:"name" validate:"required_without=ID,max=200"`
	CountryCode   string `json:"country_code" validate:"omitempty,len=2,alpha"`
	Phone         string `json:"phone" validate:"max=64"`
	BankName      string `json:"bank_name" validate:"max=200"`
	AccountNumber string `json:"account_number" validate:"max=64"`
}

// SetRecipient accepts either {"id": "..."} for a saved recipient or a
// new-recipient form.
func (h *TransferHandler) SetRecipient(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[recipientRequest](w, r)
	if !ok {
		return
	}
	rec := models.Recipient{
		ID:            req.ID,
		Name:          req.Name,
		CountryCode:   req.CountryCode,
		Phone:         req.Phone,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	}
	h.withDraft(w, r, func(wf *service.Workflow) (models.Draft, error) {
		return wf.SetRecipient(rec)
	})
}

func (h *TransferHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.withDraft(w, r, func(wf *service.Workflow) (models.Draft, error) {
		return wf.Advance()
	})
}

func (h *TransferHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.withDraft(w, r, func(wf *service.Workflow) (models.Draft, error) {
		return wf.Back()
	})
}

// Submit hands the draft to the payment gateway. A gateway failure leaves the
// draft in REVIEW and answers 502 so the client can retry.
func (h *TransferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.withWorkflow(w, r, http.StatusCreated, func(wf *service.Workflow) (interface{}, error) {
		conf, err := wf.Submit(r.Context())
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"step": wf.Step(), "confirmation": conf}, nil
	})
}

func (h *TransferHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	owner, id, ok := h.target(w, r)
	if !ok {
		return
	}
	if err := h.sessions.Delete(owner, id); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TransferHandler) withDraft(w http.ResponseWriter, r *http.Request, fn func(*service.Workflow) (models.Draft, error)) {
	h.withWorkflow(w, r, http.StatusOK, func(wf *service.Workflow) (interface{}, error) {
		d, err := fn(wf)
		if err != nil {
			return nil, err
		}
		return h.view(d), nil
	})
}

func (h *TransferHandler) withWorkflow(w http.ResponseWriter, r *http.Request, status int, fn func(*service.Workflow) (interface{}, error)) {
	owner, id, ok := h.target(w, r)
	if !ok {
		return
	}
	var body interface{}
	err := h.sessions.With(owner, id, func(wf *service.Workflow) error {
		var err error
		body, err = fn(wf)
		return err
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	RespondJSON(w, status, body)
}

func (h *TransferHandler) target(w http.ResponseWriter, r *http.Request) (string, uuid.UUID, bool) {
	owner, ok := requestOwner(r)
	if !ok {
		RespondError(w, r, http.StatusUnauthorized, "auth/unauthorized", "missing user in auth context")
		return "", uuid.Nil, false
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, r, http.StatusBadRequest, "transfer/invalid-id", "invalid transfer id")
		return "", uuid.Nil, false
	}
	return owner, id, true
}
