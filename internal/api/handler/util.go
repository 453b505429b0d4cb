package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/ayo6706/remittance-engine/internal/api/middleware"
	"github.com/ayo6706/remittance-engine/internal/api/problem"
	"github.com/ayo6706/remittance-engine/internal/domain"
	"github.com/ayo6706/remittance-engine/internal/service"
	"github.com/ayo6706/remittance-engine/internal/session"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports json field names in validation errors.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// RespondJSON writes a JSON response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes an error response.
func RespondError(w http.ResponseWriter, r *http.Request, status int, problemType, message string) {
	if problemType != "" && problemType != "about:blank" && !strings.HasPrefix(problemType, "http") {
		problemType = problem.Type(problemType)
	}
	problem.Write(w, r, status, problemType, http.StatusText(status), message)
}

// decodeAndValidate parses a JSON body into T and runs its validate tags.
// It writes the problem response itself and returns false on failure.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var input T
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		RespondError(w, r, http.StatusBadRequest, "request/invalid-body", "invalid request body")
		return nil, false
	}
	if err := validate.Struct(input); err != nil {
		fields := validationFields(err)
		problem.WriteFields(w, r, http.StatusBadRequest, problem.Type("request/validation-failed"), "",
			describeValidation(fields, err), fields)
		return nil, false
	}
	return &input, true
}

// validationFields maps json field names to the failed validate tag.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

func describeValidation(fields map[string]string, err error) string {
	if len(fields) == 0 {
		return err.Error()
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s failed %s", name, fields[name]))
	}
	return strings.Join(parts, "; ")
}

func requestOwner(r *http.Request) (string, bool) {
	userID := middleware.UserIDFromContext(r.Context())
	return userID, userID != ""
}

// errorView is the machine-readable form of an error attached to a resource.
type errorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newErrorView(err error) *errorView {
	if err == nil {
		return nil
	}
	code := domain.Kind(err)
	if code == "" {
		code = "error"
	}
	return &errorView{Code: code, Message: err.Error()}
}

// writeDomainError maps engine and session errors to problem responses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		RespondError(w, r, http.StatusNotFound, "transfer/not-found", err.Error())
		return
	case errors.Is(err, session.ErrForbidden):
		RespondError(w, r, http.StatusForbidden, "transfer/forbidden", err.Error())
		return
	}

	status, slug := statusForKind(domain.Kind(err))
	var guard *service.GuardError
	if errors.As(err, &guard) {
		slug = "workflow/guard-" + slug
	}
	RespondError(w, r, status, slug, err.Error())
}

func statusForKind(kind string) (int, string) {
	slug := strings.ReplaceAll(kind, "_", "-")
	switch kind {
	case "not_found", "no_draft":
		return http.StatusNotFound, slug
	case "unknown_currency":
		return http.StatusBadRequest, slug
	case "invalid_amount", "amount_too_low", "amount_too_high",
		"invalid_email", "weak_password", "password_mismatch", "invalid_name",
		"invalid_phone", "invalid_bank_account", "required", "recipient_required":
		return http.StatusUnprocessableEntity, slug
	case "invalid_transition", "wrong_step":
		return http.StatusConflict, slug
	case "submission_failed":
		return http.StatusBadGateway, slug
	default:
		return http.StatusInternalServerError, "internal-server-error"
	}
}
