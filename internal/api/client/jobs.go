package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Refresh runs one refresh cycle on the server.
func (c *Client) Refresh(ctx context.Context) (*engine.RefreshSummary, error) {
	var s engine.RefreshSummary
	if err := c.post(ctx, "/api/v1/refresh", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListJobRuns returns recent runs of a scheduled job. An empty status
// returns runs in every state.
func (c *Client) ListJobRuns(ctx context.Context, jobName, status string, limit int) ([]domain.JobRun, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if status != "" {
		q.Set("status", status)
	}
	path := "/api/v1/jobs/" + url.PathEscape(jobName)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
