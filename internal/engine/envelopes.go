package engine

import (
	"github.com/donaldgifford/phone-spec-scraper/pkg/reconcile"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Usage reports completion tokens consumed by a reconciliation.
type Usage struct {
	TotalTokens int `json:"totalTokens" example:"2310"`
}

// SearchResponse is the envelope returned by Search. A search that found
// nothing carries Suggestion and Suggestion2 guidance.
type SearchResponse struct {
	Success     bool                     `json:"success"`
	Candidates  []domain.SearchCandidate `json:"candidates"`
	Error       string                   `json:"error,omitempty"`
	ErrorKind   ErrorKind                `json:"errorKind,omitempty"`
	Suggestion  string                   `json:"suggestion,omitempty"`
	Suggestion2 string                   `json:"suggestion2,omitempty"`
}

// ExtractResponse is the envelope returned by Extract.
type ExtractResponse struct {
	Success   bool                     `json:"success"`
	Data      *domain.ExtractionResult `json:"data,omitempty"`
	Error     string                   `json:"error,omitempty"`
	ErrorKind ErrorKind                `json:"errorKind,omitempty"`
}

// ReconcileResponse is the envelope returned by Reconcile. On failure
// Fallback carries the unreconciled input so the caller is never blocked.
type ReconcileResponse struct {
	Success   bool                     `json:"success"`
	Data      *domain.ReconciledResult `json:"data,omitempty"`
	Usage     *Usage                   `json:"usage,omitempty"`
	Model     string                   `json:"model,omitempty"`
	Error     string                   `json:"error,omitempty"`
	ErrorKind ErrorKind                `json:"errorKind,omitempty"`
	Debug     *reconcile.ParseError    `json:"debug,omitempty"`
	Fallback  *domain.ExtractionResult `json:"fallback,omitempty"`
}

// IngestRequest drives the search, extract, reconcile, save pipeline.
// URL wins over Query when both are set.
type IngestRequest struct {
	Query          string
	URL            string
	CandidateIndex int
	Reconcile      bool
	Save           bool
}

// IngestResponse is the envelope returned by Ingest. A failed optional
// reconciliation does not fail the ingest: Data keeps the extracted record
// and ReconcileError says why.
type IngestResponse struct {
	Success        bool                     `json:"success"`
	Data           *domain.ExtractionResult `json:"data,omitempty"`
	Reconciled     bool                     `json:"reconciled"`
	Candidates     []domain.SearchCandidate `json:"candidates,omitempty"`
	SheetID        string                   `json:"sheetId,omitempty"`
	Usage          *Usage                   `json:"usage,omitempty"`
	ReconcileError string                   `json:"reconcileError,omitempty"`
	Error          string                   `json:"error,omitempty"`
	ErrorKind      ErrorKind                `json:"errorKind,omitempty"`
	Suggestion     string                   `json:"suggestion,omitempty"`
	Suggestion2    string                   `json:"suggestion2,omitempty"`
}
