package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte(UserIDFromContext(r.Context())))
}

func TestTraceMiddleware(t *testing.T) {
	var seen string
	h := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = TraceIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "abc-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", strings.Repeat("x", maxTraceIDLength+1))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get("X-Trace-ID"))
}

func TestAuthMiddleware(t *testing.T) {
	SetJWTSecret("middleware-secret")
	SetJWTValidation("remit-test", "remit-clients")
	h := AuthMiddleware(http.HandlerFunc(okHandler))

	token, expiresAt, err := IssueToken("sender-1", "a@b.co", time.Now(), time.Minute)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sender-1", w.Body.String())

	expired, _, err := IssueToken("sender-1", "a@b.co", time.Now().Add(-time.Hour), time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		slug   string
	}{
		{"missing header", "", "auth/authorization-header-required"},
		{"no bearer prefix", token, "auth/invalid-token-format"},
		{"garbage", "Bearer nope", "auth/invalid-token"},
		{"expired", "Bearer " + expired, "auth/invalid-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
			var p map[string]interface{}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
			assert.True(t, strings.HasSuffix(p["type"].(string), tc.slug), p["type"])
		})
	}
}

func TestAuthRateLimiterKeysBySender(t *testing.T) {
	SetJWTSecret("middleware-secret")
	SetJWTValidation("", "")
	h := AuthMiddleware(AuthRateLimiter(1)(http.HandlerFunc(okHandler)))

	call := func(userID string) int {
		token, _, err := IssueToken(userID, "", time.Now(), time.Minute)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("alice"))
	assert.Equal(t, http.StatusTooManyRequests, call("alice"))
	assert.Equal(t, http.StatusOK, call("bob"))
}

func TestRecoverMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := TraceMiddleware(RecoverMiddleware(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/quotes", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	var p map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
	assert.Equal(t, w.Header().Get("X-Trace-ID"), p["request_id"])
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestLoggingLevelFollowsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	status := http.StatusOK
	h := LoggingMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	for _, s := range []int{http.StatusOK, http.StatusConflict, http.StatusBadGateway} {
		status = s
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/corridors", nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "unmatched", entries[0].ContextMap()["route"])
}
