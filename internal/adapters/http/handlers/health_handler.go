package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/contact-form/internal/platform/logging"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// readinessResponse is the body of GET /health/ready. Checks maps each
// component name to "ok" or its failure message.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise. Failing checks are logged at warn.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
