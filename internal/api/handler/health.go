package handler

import (
	"net/http"

	"github.com/ayo6706/remittance-engine/internal/registry"
)

// HealthHandler exposes Kubernetes-style liveness and readiness endpoints.
type HealthHandler struct {
	registry *registry.Registry
}

func NewHealthHandler(reg *registry.Registry) *HealthHandler {
	return &HealthHandler{registry: reg}
}

// Live always reports OK – if the process is up, it's live.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports whether the corridor registry is loaded.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.registry == nil || h.registry.Len() == 0 {
		RespondError(w, r, http.StatusServiceUnavailable, "health/registry-unavailable", "corridor registry not loaded")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ready",
		"corridors": h.registry.Len(),
	})
}
