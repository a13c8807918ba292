package engine

import (
	"context"
	"errors"

	"github.com/donaldgifford/phone-spec-scraper/pkg/reconcile"
	"github.com/donaldgifford/phone-spec-scraper/pkg/scrape"
)

// ErrorKind classifies a failure so callers can branch without inspecting
// error types.
type ErrorKind string

// Error kinds carried in response envelopes.
const (
	KindTransport           ErrorKind = "transport"
	KindNotFound            ErrorKind = "not_found"
	KindExtraction          ErrorKind = "extraction"
	KindReconciliationParse ErrorKind = "reconciliation_parse"
	KindInvalidInput        ErrorKind = "invalid_input"
	KindInternal            ErrorKind = "internal"
)

// Guidance returned with a search that found nothing.
const (
	SuggestionShorterQuery = "Try a shorter query with just the brand and model, for example \"Pixel 9\" or \"Galaxy S24\"."
	SuggestionPasteURL     = "Paste the product page URL directly and extract it instead of searching."
)

const internalErrorMessage = "internal error"

var (
	errReconcileDisabled = errors.New("reconciliation is not configured")
	errStoreDisabled     = errors.New("saving is not configured")
	errNoQueryOrURL      = errors.New("either query or url is required")
	errCandidateIndex    = errors.New("candidate index out of range")
)

// Classify maps an error from the scraping or reconciliation packages to its
// ErrorKind. Unknown errors are internal.
func Classify(err error) ErrorKind {
	var (
		tErr *scrape.TransportError
		bErr *reconcile.BackendError
		eErr *scrape.ExtractionError
		pErr *reconcile.ParseError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, scrape.ErrNoResults):
		return KindNotFound
	case errors.Is(err, scrape.ErrEmptyQuery),
		errors.Is(err, scrape.ErrInvalidURL),
		errors.Is(err, reconcile.ErrInvalidRecord),
		errors.Is(err, errReconcileDisabled),
		errors.Is(err, errStoreDisabled),
		errors.Is(err, errNoQueryOrURL),
		errors.Is(err, errCandidateIndex):
		return KindInvalidInput
	case errors.As(err, &eErr):
		return KindExtraction
	case errors.As(err, &pErr):
		return KindReconciliationParse
	case errors.As(err, &tErr), errors.As(err, &bErr),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return KindTransport
	default:
		return KindInternal
	}
}

// publicMessage is the error text placed in an envelope. Internal errors
// are not echoed to callers.
func publicMessage(err error, kind ErrorKind) string {
	if kind == KindInternal {
		return internalErrorMessage
	}
	return err.Error()
}
