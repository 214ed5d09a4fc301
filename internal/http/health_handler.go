package http

import (
	"context"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/product-catalog/internal/storage/db"
)

type healthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type healthHandler struct {
	// checker is nil for stores without an external dependency.
	checker db.HealthChecker
}

func (h *healthHandler) Live(w http.ResponseWriter, _ *http.Request) error {
	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *healthHandler) Ready(w http.ResponseWriter, r *http.Request) error {
	if h.checker == nil {
		return writeJSON(w, http.StatusOK, healthResponse{Status: "ready"})
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Second)
	defer cancel()

	if ok, err := h.checker.IsHealthy(ctx); !ok || err != nil {
		return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Reason: "store not reachable"})
	}

	return writeJSON(w, http.StatusOK, healthResponse{Status: "ready"})
}
