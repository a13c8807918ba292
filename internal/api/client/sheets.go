package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// SheetsResponse wraps a paginated sheets response.
type SheetsResponse struct {
	Sheets []domain.SpecSheet `json:"sheets"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ListSheetsParams defines query parameters for sheet listings.
type ListSheetsParams struct {
	Name       string
	Reconciled *bool
	Failing    bool
	Limit      int
	Offset     int
	OrderBy    string
}

// ListSheets returns stored sheets matching the given parameters.
func (c *Client) ListSheets(ctx context.Context, params *ListSheetsParams) (*SheetsResponse, error) {
	q := url.Values{}
	if params.Name != "" {
		q.Set("name", params.Name)
	}
	if params.Reconciled != nil {
		q.Set("reconciled", strconv.FormatBool(*params.Reconciled))
	}
	if params.Failing {
		q.Set("failing", "true")
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/sheets"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp SheetsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSheet returns a single stored sheet by ID.
func (c *Client) GetSheet(ctx context.Context, id string) (*domain.SpecSheet, error) {
	var s domain.SpecSheet
	if err := c.get(ctx, "/api/v1/sheets/"+url.PathEscape(id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveSheet stores record as a sheet, replacing any with the same source URL.
func (c *Client) SaveSheet(ctx context.Context, record *domain.ExtractionResult, reconciled bool) (*domain.SpecSheet, error) {
	body := map[string]any{"record": record, "reconciled": reconciled}
	var s domain.SpecSheet
	if err := c.post(ctx, "/api/v1/sheets", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
