// Package handlers implements HTTP handlers for the spec scraper API.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// readyTimeout bounds the store ping so a hung pool cannot stall the probe.
const readyTimeout = 2 * time.Second

// Pinger is the store dependency of the readiness check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	store   Pinger
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s Pinger) *HealthHandler {
	return &HealthHandler{store: s, timeout: readyTimeout}
}

// ReadyResponse reports readiness and the state of each dependency.
type ReadyResponse struct {
	Status    string `json:"status"          example:"ready"`
	Database  string `json:"database"        example:"ok"`
	LatencyMS int64  `json:"latencyMs"       example:"3"`
	Error     string `json:"error,omitempty" example:"context deadline exceeded"`
}

// Healthz returns 200 while the process is running. It never touches the
// store.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 when the store answers a ping within the timeout and
// 503 with the ping error otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, ReadyResponse{
			Status:    "unavailable",
			Database:  "unreachable",
			LatencyMS: latency,
			Error:     err.Error(),
		})
	}
	return c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Database: "ok", LatencyMS: latency})
}
