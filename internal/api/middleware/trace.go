package middleware

import (
	"context"
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/api/problem"
	"github.com/google/uuid"
)

const maxTraceIDLength = 128

// TraceMiddleware propagates a trace id through the context and echoes it in
// the response. Inbound ids that are missing or oversized are replaced.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(problem.TraceHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}
		w.Header().Set(problem.TraceHeader, traceID)
		next.ServeHTTP(w, r.WithContext(contextWithTraceID(r.Context(), traceID)))
	})
}

func contextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceContextKey, traceID)
}
