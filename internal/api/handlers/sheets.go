package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/phone-spec-scraper/internal/store"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// SheetsProvider defines the store methods required by the sheets handler.
type SheetsProvider interface {
	SaveSheet(ctx context.Context, s *domain.SpecSheet) error
	GetSheet(ctx context.Context, id string) (*domain.SpecSheet, error)
	ListSheets(ctx context.Context, q *store.SheetQuery) ([]domain.SpecSheet, int, error)
}

// SheetsHandler handles stored spec sheet requests.
type SheetsHandler struct {
	store SheetsProvider
}

// NewSheetsHandler creates a new SheetsHandler.
func NewSheetsHandler(s SheetsProvider) *SheetsHandler {
	return &SheetsHandler{store: s}
}

// ListSheetsInput defines query parameters for listing sheets.
type ListSheetsInput struct {
	Name       string `query:"name"       doc:"Case-insensitive substring of the phone name"`
	Reconciled string `query:"reconciled" enum:"true,false" doc:"Filter by reconciliation state"`
	Failing    bool   `query:"failing"    doc:"Only sheets whose last refresh recorded an error"`
	OrderBy    string `query:"order_by"   enum:"name,updated_at,last_checked_at" doc:"Sort order"`
	Limit      int    `query:"limit"      minimum:"1" maximum:"500" default:"50"`
	Offset     int    `query:"offset"     minimum:"0" default:"0"`
}

// ListSheetsOutput is the response body for listing sheets.
type ListSheetsOutput struct {
	Body struct {
		Sheets []domain.SpecSheet `json:"sheets"`
		Total  int                `json:"total"  example:"42"`
		Limit  int                `json:"limit"  example:"50"`
		Offset int                `json:"offset" example:"0"`
	}
}

// ListSheets returns stored sheets matching the optional filters.
func (h *SheetsHandler) ListSheets(ctx context.Context, input *ListSheetsInput) (*ListSheetsOutput, error) {
	q := &store.SheetQuery{
		Failing: input.Failing,
		OrderBy: input.OrderBy,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		q.Name = &name
	}
	if input.Reconciled != "" {
		v := input.Reconciled == "true"
		q.Reconciled = &v
	}

	sheets, total, err := h.store.ListSheets(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing sheets failed: " + err.Error())
	}
	if sheets == nil {
		sheets = []domain.SpecSheet{}
	}

	resp := &ListSheetsOutput{}
	resp.Body.Sheets = sheets
	resp.Body.Total = total
	resp.Body.Limit = input.Limit
	resp.Body.Offset = input.Offset
	return resp, nil
}

// GetSheetInput is the request path for a single sheet.
type GetSheetInput struct {
	ID string `path:"id" doc:"Sheet ID"`
}

// SheetOutput is the response body for a single sheet.
type SheetOutput struct {
	Body *domain.SpecSheet
}

// GetSheet returns one stored sheet.
func (h *SheetsHandler) GetSheet(ctx context.Context, input *GetSheetInput) (*SheetOutput, error) {
	sheet, err := h.store.GetSheet(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("sheet not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("fetching sheet failed: " + err.Error())
	}
	return &SheetOutput{Body: sheet}, nil
}

// SaveSheetInput is the request body for storing a record directly.
type SaveSheetInput struct {
	Body struct {
		Record     domain.ExtractionResult `json:"record"               doc:"Record to store"`
		Reconciled bool                    `json:"reconciled,omitempty" doc:"Whether the record came from reconciliation"`
	}
}

// SaveSheet stores a record, replacing any sheet with the same source URL.
func (h *SheetsHandler) SaveSheet(ctx context.Context, input *SaveSheetInput) (*SheetOutput, error) {
	record := input.Body.Record
	if strings.TrimSpace(record.Name) == "" {
		return nil, huma.Error400BadRequest("record.name is required")
	}
	if strings.TrimSpace(record.SourceURL) == "" {
		return nil, huma.Error400BadRequest("record.sourceUrl is required")
	}

	sheet := domain.SheetFromResult(&record, input.Body.Reconciled)
	if err := h.store.SaveSheet(ctx, sheet); err != nil {
		return nil, huma.Error500InternalServerError("saving sheet failed: " + err.Error())
	}
	return &SheetOutput{Body: sheet}, nil
}

// RegisterSheetRoutes registers spec sheet endpoints with the Huma API.
func RegisterSheetRoutes(api huma.API, h *SheetsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sheets",
		Method:      http.MethodGet,
		Path:        "/api/v1/sheets",
		Summary:     "List stored spec sheets",
		Tags:        []string{"sheets"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListSheets)

	huma.Register(api, huma.Operation{
		OperationID: "get-sheet",
		Method:      http.MethodGet,
		Path:        "/api/v1/sheets/{id}",
		Summary:     "Get a stored spec sheet",
		Tags:        []string{"sheets"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetSheet)

	huma.Register(api, huma.Operation{
		OperationID:   "save-sheet",
		Method:        http.MethodPost,
		Path:          "/api/v1/sheets",
		Summary:       "Store a spec sheet",
		Description:   "Upserts a record by source URL.",
		Tags:          []string{"sheets"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.SaveSheet)
}
