package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/internal/api/handlers"
	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
)

// mockRefresher implements RefreshRunner for testing.
type mockRefresher struct {
	summary *engine.RefreshSummary
	err     error
	called  bool
}

func (m *mockRefresher) RunRefresh(_ context.Context) (*engine.RefreshSummary, error) {
	m.called = true
	return m.summary, m.err
}

func TestRefreshHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		runner   *mockRefresher
		wantCode int
		wantBody string
	}{
		{
			name:     "success",
			runner:   &mockRefresher{summary: &engine.RefreshSummary{Checked: 3, Updated: 2, Failed: 1}},
			wantCode: http.StatusOK,
			wantBody: `"checked":3`,
		},
		{
			name:     "already running",
			runner:   &mockRefresher{err: engine.ErrRefreshRunning},
			wantCode: http.StatusConflict,
			wantBody: "already running",
		},
		{
			name:     "failure",
			runner:   &mockRefresher{summary: &engine.RefreshSummary{}, err: errors.New("listing stale sheets: db down")},
			wantCode: http.StatusInternalServerError,
			wantBody: "refresh failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(tt.runner))

			resp := api.Post("/api/v1/refresh")
			require.Equal(t, tt.wantCode, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.True(t, tt.runner.called)
		})
	}
}
