package client

import (
	"context"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Search finds product page candidates for query.
func (c *Client) Search(ctx context.Context, query string) (*engine.SearchResponse, error) {
	var resp engine.SearchResponse
	if err := c.postEnvelope(ctx, "/api/v1/search", map[string]string{"query": query}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Extract fetches and normalizes one product page.
func (c *Client) Extract(ctx context.Context, url string) (*engine.ExtractResponse, error) {
	var resp engine.ExtractResponse
	if err := c.postEnvelope(ctx, "/api/v1/extract", map[string]string{"url": url}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Reconcile sends record through the server's completion backend.
func (c *Client) Reconcile(ctx context.Context, record *domain.ExtractionResult) (*engine.ReconcileResponse, error) {
	var resp engine.ReconcileResponse
	body := map[string]any{"record": record}
	if err := c.postEnvelope(ctx, "/api/v1/reconcile", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IngestParams are the options of an ingest request.
type IngestParams struct {
	Query          string `json:"query,omitempty"`
	URL            string `json:"url,omitempty"`
	CandidateIndex int    `json:"candidateIndex,omitempty"`
	Reconcile      bool   `json:"reconcile,omitempty"`
	Save           bool   `json:"save,omitempty"`
}

// Ingest runs the search, extract, reconcile, save pipeline on the server.
func (c *Client) Ingest(ctx context.Context, params *IngestParams) (*engine.IngestResponse, error) {
	var resp engine.IngestResponse
	if err := c.postEnvelope(ctx, "/api/v1/ingest", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
