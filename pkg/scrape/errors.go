package scrape

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Input and soft-result errors.
var (
	ErrEmptyQuery = errors.New("search query is empty")
	ErrInvalidURL = errors.New("url must be an absolute http(s) url")
	ErrNoResults  = errors.New("no matching phones found")
)

// Extraction failure reasons surfaced to callers verbatim.
const (
	ReasonNoName  = "Could not extract valid phone name"
	ReasonNoSpecs = "No specifications found"
	ReasonBadHTML = "Could not parse page"
)

// TransportError reports a failed or timed out fetch. Callers decide whether
// to retry.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the fetch failed because a deadline expired.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// ExtractionError reports a page that was fetched but is not a usable
// product page, usually a non-product URL or a source layout change.
type ExtractionError struct {
	URL    string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
