package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthCheck reports whether one dependency is reachable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks    map[string]HealthCheck
	startTime time.Time
}

func NewHealthHandler(checks map[string]HealthCheck, startTime time.Time) *HealthHandler {
	return &HealthHandler{checks: checks, startTime: startTime}
}

type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Uptime    string            `json:"uptime"`
	StartedAt string            `json:"startedAt"`
}

// ServeHTTP answers 200 when every dependency is healthy and 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	response := HealthCheckResponse{
		Status:    "ok",
		Checks:    make(map[string]string, len(h.checks)),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		StartedAt: h.startTime.UTC().Format(time.RFC3339),
	}

	code := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			response.Checks[name] = "unavailable"
			response.Status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "healthy"
	}

	respondWithJSON(w, code, response)
}
