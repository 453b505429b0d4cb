package spec

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDocumentDescribesTransferRoutes(t *testing.T) {
	var doc struct {
		OpenAPI string                 `yaml:"openapi"`
		Paths   map[string]interface{} `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(Document(), &doc))
	assert.NotEmpty(t, doc.OpenAPI)
	for _, path := range []string{"/v1/quotes", "/v1/corridors", "/v1/transfers", "/v1/transfers/{id}/submit"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestOpenAPIHandler(t *testing.T) {
	w := httptest.NewRecorder()
	OpenAPIHandler()(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/yaml", w.Header().Get("Content-Type"))
	assert.Equal(t, Document(), w.Body.Bytes())
}
