package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/ayo6706/remittance-engine/internal/api/middleware"
	"github.com/ayo6706/remittance-engine/internal/validation"
	"github.com/google/uuid"
)

type AuthHandler struct {
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthHandler(tokenTTL time.Duration) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthHandler{tokenTTL: tokenTTL, now: time.Now}
}

// Login validates the login form and issues a token. There is no user store:
// the user ID is derived from the email so the same email always maps to the
// same owner of transfer drafts.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[validation.LoginForm](w, r)
	if !ok {
		return
	}
	if form := req.Validate(); !form.Valid() {
		RespondJSON(w, http.StatusUnprocessableEntity, formResult{Valid: false, Fields: form})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)).String()

	token, expiresAt, err := middleware.IssueToken(userID, email, h.now(), h.tokenTTL)
	if err != nil {
		RespondError(w, r, http.StatusInternalServerError, "auth/token-signing-failed", "failed to sign token")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"token":      token,
		"user_id":    userID,
		"expires_at": expiresAt.UTC(),
	})
}
