package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListSheets(context.Background(), &ListSheetsParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title":"Internal Server Error","status":500}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListSheets(context.Background(), &ListSheetsParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pixel 9", body["query"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(engine.SearchResponse{
			Success:    true,
			Candidates: []domain.SearchCandidate{{Name: "Google Pixel 9", URL: "https://x/p9.php"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Search(context.Background(), "pixel 9")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Candidates, 1)
}

func TestClient_ExtractFailureEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"success":false,"error":"No specifications found","errorKind":"extraction"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Extract(context.Background(), "https://x/not-a-phone.php")
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, engine.KindExtraction, resp.ErrorKind)
	assert.Equal(t, "No specifications found", resp.Error)
}

func TestClient_ValidationErrorIsNotAnEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"title":"Unprocessable Entity","errors":[{"message":"expected required property url"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Extract(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 422")
}

func TestClient_Ingest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ingest", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "galaxy", body["query"])
		assert.Equal(t, true, body["save"])
		assert.NotContains(t, body, "url")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(engine.IngestResponse{Success: true, SheetID: "s-1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Ingest(context.Background(), &IngestParams{Query: "galaxy", Save: true})
	require.NoError(t, err)
	assert.Equal(t, "s-1", resp.SheetID)
}

func TestClient_ListSheets(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sheets", r.URL.Path)
		assert.Equal(t, "pixel", r.URL.Query().Get("name"))
		assert.Equal(t, "false", r.URL.Query().Get("reconciled"))
		assert.Equal(t, "true", r.URL.Query().Get("failing"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SheetsResponse{
			Sheets: []domain.SpecSheet{{ID: "s1"}},
			Total:  1,
		})
	}))
	defer srv.Close()

	reconciled := false
	c := New(srv.URL)
	resp, err := c.ListSheets(context.Background(), &ListSheetsParams{
		Name:       "pixel",
		Reconciled: &reconciled,
		Failing:    true,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Sheets, 1)
}

func TestClient_GetSheet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sheets/s1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.SpecSheet{ID: "s1", Name: "Google Pixel 9"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	s, err := c.GetSheet(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Google Pixel 9", s.Name)
}

func TestClient_Refresh(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/refresh", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(engine.RefreshSummary{Checked: 2, Updated: 2})
	}))
	defer srv.Close()

	c := New(srv.URL)
	s, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Updated)
}

func TestClient_ListJobRuns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/jobs/refresh", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "failed", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.JobRun{{ID: "r1", JobName: "refresh"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	runs, err := c.ListJobRuns(context.Background(), "refresh", "failed", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "r1", runs[0].ID)
}

func TestClient_ListJobRuns_NoFilters(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	runs, err := New(srv.URL).ListJobRuns(context.Background(), "refresh", "", 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
