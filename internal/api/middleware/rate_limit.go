package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ayo6706/remittance-engine/internal/api/problem"
	"github.com/go-chi/httprate"
)

// PublicRateLimiter limits quote, corridor and login traffic per client IP.
func PublicRateLimiter(rps int) func(http.Handler) http.Handler {
	return httprate.Limit(rps, time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(limitExceeded("IP", rps)),
	)
}

// AuthRateLimiter limits draft operations per sender, falling back to the IP.
func AuthRateLimiter(rps int) func(http.Handler) http.Handler {
	return httprate.Limit(rps, time.Second,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			if userID := UserIDFromContext(r.Context()); userID != "" {
				return "sender:" + userID, nil
			}
			return httprate.KeyByIP(r)
		}),
		httprate.WithLimitHandler(limitExceeded("sender", rps)),
	)
}

func limitExceeded(scope string, rps int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "1")
		problem.Write(
			w,
			r,
			http.StatusTooManyRequests,
			problem.Type("rate-limit-exceeded"),
			"",
			fmt.Sprintf("Rate limit of %d req/s exceeded for this %s", rps, scope),
		)
	}
}
