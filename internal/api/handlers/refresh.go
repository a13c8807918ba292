package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
)

// RefreshRunner defines the interface for triggering a refresh cycle.
type RefreshRunner interface {
	RunRefresh(ctx context.Context) (*engine.RefreshSummary, error)
}

// RefreshHandler handles manual refresh trigger requests.
type RefreshHandler struct {
	refresher RefreshRunner
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r RefreshRunner) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the refresh endpoint.
type RefreshOutput struct {
	Body *engine.RefreshSummary
}

// Refresh runs one refresh cycle over stale sheets and reports what it did.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	summary, err := h.refresher.RunRefresh(ctx)
	if errors.Is(err, engine.ErrRefreshRunning) {
		return nil, huma.Error409Conflict("a refresh cycle is already running")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("refresh failed: " + err.Error())
	}
	return &RefreshOutput{Body: summary}, nil
}

// RegisterRefreshRoutes registers refresh endpoints with the Huma API.
func RegisterRefreshRoutes(api huma.API, h *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/refresh",
		Summary:     "Refresh stale spec sheets",
		Description: "Re-extracts stored sheets whose last check is older than the " +
			"configured threshold. Layout changes are recorded and notified.",
		Tags:   []string{"refresh"},
		Errors: []int{http.StatusConflict, http.StatusInternalServerError},
	}, h.Refresh)
}
