package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/validation"
	"github.com/go-chi/chi/v5"
)

type formResult struct {
	Valid  bool            `json:"valid"`
	Fields validation.Form `json:"fields"`
}

type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

// Validate evaluates one of the known forms and always answers 200 with the
// per-field verdicts. Only an unknown form or a malformed body is an error.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var form validation.Form
	switch chi.URLParam(r, "form") {
	case "login":
		req, ok := decodeAndValidate[validation.LoginForm](w, r)
		if !ok {
			return
		}
		form = req.Validate()
	case "signup":
		req, ok := decodeAndValidate[validation.SignupForm](w, r)
		if !ok {
			return
		}
		form = req.Validate()
	case "forgot-password":
		req, ok := decodeAndValidate[validation.ForgotPasswordForm](w, r)
		if !ok {
			return
		}
		form = req.Validate()
	case "recipient":
		req, ok := decodeAndValidate[validation.RecipientForm](w, r)
		if !ok {
			return
		}
		form = req.Validate()
	default:
		RespondError(w, r, http.StatusNotFound, "validation/unknown-form", "unknown form")
		return
	}
	RespondJSON(w, http.StatusOK, formResult{Valid: form.Valid(), Fields: form})
}
