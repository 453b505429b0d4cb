package problem

import (
	"encoding/json"
	"net/http"
)

const contentType = "application/problem+json"
const baseTypeURL = "https://errors.remittance-engine.dev/"

// TraceHeader carries the request trace id on both requests and responses.
const TraceHeader = "X-Trace-ID"

// Details represents RFC 7807 Problem Details. Fields is an extension member
// holding per-field messages for request validation failures.
type Details struct {
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Status    int               `json:"status"`
	Detail    string            `json:"detail"`
	Instance  string            `json:"instance"`
	RequestID string            `json:"request_id"`
	Fields    map[string]string `json:"fields,omitempty"`
}

func Type(slug string) string {
	return baseTypeURL + slug
}

// Write sends RFC 7807-compliant errors.
func Write(w http.ResponseWriter, r *http.Request, status int, problemType, title, detail string) {
	WriteFields(w, r, status, problemType, title, detail, nil)
}

// WriteFields is Write with per-field messages attached.
func WriteFields(w http.ResponseWriter, r *http.Request, status int, problemType, title, detail string, fields map[string]string) {
	if title == "" {
		title = http.StatusText(status)
	}
	if problemType == "" {
		problemType = "about:blank"
	}
	instance := ""
	requestID := w.Header().Get(TraceHeader)
	if r != nil {
		instance = r.URL.Path
		if requestID == "" {
			requestID = r.Header.Get(TraceHeader)
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Details{
		Type:      problemType,
		Title:     title,
		Status:    status,
		Detail:    detail,
		Instance:  instance,
		RequestID: requestID,
		Fields:    fields,
	})
}
