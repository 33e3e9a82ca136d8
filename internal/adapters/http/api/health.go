// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"presenca/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatusHandler answers the root status probe.
type StatusHandler struct{}

// NewStatusHandler creates a new status handler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// HandleRoot handles GET / requests.
func (h *StatusHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "online",
		Message: "attendance tracking local API",
	})
}

// HealthHandler serves Prometheus metrics for scraping.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /healthz requests using the custom registry.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
