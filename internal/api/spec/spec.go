package spec

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var document []byte

// Document returns a copy of the embedded OpenAPI description of the transfer API.
func Document() []byte {
	out := make([]byte, len(document))
	copy(out, document)
	return out
}

// OpenAPIHandler serves the embedded OpenAPI description.
func OpenAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(document) == 0 {
			http.Error(w, "openapi spec not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(document)
	}
}
