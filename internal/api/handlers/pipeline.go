package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Pipeline is the envelope-returning boundary the pipeline handlers serve.
type Pipeline interface {
	Search(ctx context.Context, query string) *engine.SearchResponse
	Extract(ctx context.Context, url string) *engine.ExtractResponse
	Reconcile(ctx context.Context, record *domain.ExtractionResult) *engine.ReconcileResponse
	Ingest(ctx context.Context, req engine.IngestRequest) *engine.IngestResponse
}

// PipelineHandler handles search, extract, reconcile, and ingest requests.
type PipelineHandler struct {
	pipeline Pipeline
}

// NewPipelineHandler creates a new PipelineHandler.
func NewPipelineHandler(p Pipeline) *PipelineHandler {
	return &PipelineHandler{pipeline: p}
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct {
		Query string `json:"query" maxLength:"200" doc:"Free-text phone name" example:"pixel 9 pro"`
	}
}

// SearchOutput carries the search envelope.
type SearchOutput struct {
	Status int
	Body   *engine.SearchResponse
}

// Search finds product page candidates for a free-text query.
func (h *PipelineHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	resp := h.pipeline.Search(ctx, input.Body.Query)
	return &SearchOutput{Status: statusFor(resp.ErrorKind), Body: resp}, nil
}

// ExtractInput is the request body for the extract endpoint.
type ExtractInput struct {
	Body struct {
		URL string `json:"url" maxLength:"2048" doc:"Product page URL" example:"https://www.gsmarena.com/google_pixel_9_pro-13218.php"`
	}
}

// ExtractOutput carries the extract envelope.
type ExtractOutput struct {
	Status int
	Body   *engine.ExtractResponse
}

// Extract fetches and normalizes one product page.
func (h *PipelineHandler) Extract(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	resp := h.pipeline.Extract(ctx, input.Body.URL)
	return &ExtractOutput{Status: statusFor(resp.ErrorKind), Body: resp}, nil
}

// ReconcileInput is the request body for the reconcile endpoint.
type ReconcileInput struct {
	Body struct {
		Record domain.ExtractionResult `json:"record" doc:"Extracted record to reconcile"`
	}
}

// ReconcileOutput carries the reconcile envelope.
type ReconcileOutput struct {
	Status int
	Body   *engine.ReconcileResponse
}

// Reconcile sends an extracted record through the completion backend.
func (h *PipelineHandler) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	record := input.Body.Record
	resp := h.pipeline.Reconcile(ctx, &record)
	return &ReconcileOutput{Status: statusFor(resp.ErrorKind), Body: resp}, nil
}

// IngestInput is the request body for the ingest endpoint.
type IngestInput struct {
	Body struct {
		Query          string `json:"query,omitempty"          maxLength:"200" doc:"Free-text phone name, used when url is empty"`
		URL            string `json:"url,omitempty"            maxLength:"2048" doc:"Product page URL; wins over query"`
		CandidateIndex int    `json:"candidateIndex,omitempty" minimum:"0" maximum:"9" doc:"Which search candidate to extract"`
		Reconcile      bool   `json:"reconcile,omitempty"      doc:"Reconcile the record before returning it"`
		Save           bool   `json:"save,omitempty"           doc:"Persist the record as a spec sheet"`
	}
}

// IngestOutput carries the ingest envelope.
type IngestOutput struct {
	Status int
	Body   *engine.IngestResponse
}

// Ingest runs search, extract, and optionally reconcile and save.
func (h *PipelineHandler) Ingest(ctx context.Context, input *IngestInput) (*IngestOutput, error) {
	resp := h.pipeline.Ingest(ctx, engine.IngestRequest{
		Query:          input.Body.Query,
		URL:            input.Body.URL,
		CandidateIndex: input.Body.CandidateIndex,
		Reconcile:      input.Body.Reconcile,
		Save:           input.Body.Save,
	})
	return &IngestOutput{Status: statusFor(resp.ErrorKind), Body: resp}, nil
}

// RegisterPipelineRoutes registers pipeline endpoints with the Huma API.
func RegisterPipelineRoutes(api huma.API, h *PipelineHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-phones",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search for phone pages",
		Description: "Searches the source site and returns product page candidates. " +
			"A search with no results succeeds with success=false and suggestions.",
		Tags:   []string{"pipeline"},
		Errors: []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "extract-phone",
		Method:      http.MethodPost,
		Path:        "/api/v1/extract",
		Summary:     "Extract a product page",
		Description: "Fetches a product page and normalizes its specification tables " +
			"into the fixed taxonomy.",
		Tags:   []string{"pipeline"},
		Errors: []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Extract)

	huma.Register(api, huma.Operation{
		OperationID: "reconcile-record",
		Method:      http.MethodPost,
		Path:        "/api/v1/reconcile",
		Summary:     "Reconcile an extracted record",
		Description: "Sends a record through the configured completion backend. " +
			"Failures carry the input record as fallback.",
		Tags:   []string{"pipeline"},
		Errors: []int{http.StatusBadRequest, http.StatusBadGateway},
	}, h.Reconcile)

	huma.Register(api, huma.Operation{
		OperationID: "ingest-phone",
		Method:      http.MethodPost,
		Path:        "/api/v1/ingest",
		Summary:     "Search, extract, reconcile, and save",
		Description: "Resolves a query or URL to a record. A failed reconciliation " +
			"keeps the extracted record and reports reconcileError.",
		Tags: []string{"pipeline"},
		Errors: []int{
			http.StatusBadRequest,
			http.StatusUnprocessableEntity,
			http.StatusBadGateway,
			http.StatusInternalServerError,
		},
	}, h.Ingest)
}
