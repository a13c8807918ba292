package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

const (
	// DefaultBaseURL is the GSMArena site root.
	DefaultBaseURL = "https://www.gsmarena.com"
	// MaxCandidates caps the candidates returned from one search.
	MaxCandidates = 10
)

// Finder locates product pages for a free-text phone query.
type Finder struct {
	fetcher Fetcher
	baseURL string
	log     *slog.Logger
}

// FinderOption configures the Finder.
type FinderOption func(*Finder)

// WithFinderBaseURL overrides the source site root.
func WithFinderBaseURL(base string) FinderOption {
	return func(f *Finder) {
		if base != "" {
			f.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithFinderLogger sets the logger for filter decisions.
func WithFinderLogger(l *slog.Logger) FinderOption {
	return func(f *Finder) {
		f.log = l
	}
}

// NewFinder creates a Finder that fetches through fetcher.
func NewFinder(fetcher Fetcher, opts ...FinderOption) *Finder {
	f := &Finder{
		fetcher: fetcher,
		baseURL: DefaultBaseURL,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SearchURL returns the results page URL for query.
func (f *Finder) SearchURL(query string) string {
	return f.baseURL + "/results.php3?sQuickSearch=yes&sName=" + url.QueryEscape(query)
}

// Search fetches the results page for query and returns up to
// MaxCandidates product links in page order. It returns ErrNoResults when
// nothing survives the link filter.
func (f *Finder) Search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	pageURL := f.SearchURL(query)
	body, err := f.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	candidates, err := f.Parse(pageURL, body)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%q: %w", query, ErrNoResults)
	}

	f.log.Debug("search complete", "query", query, "candidates", len(candidates))
	return candidates, nil
}

// Parse applies the link filter to a fetched results page.
func (f *Finder) Parse(pageURL string, body []byte) ([]domain.SearchCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ExtractionError{URL: pageURL, Reason: ReasonBadHTML, Err: err}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", pageURL, ErrInvalidURL)
	}

	seen := make(map[string]bool)
	var out []domain.SearchCandidate

	doc.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		l := link{Href: strings.TrimSpace(href), Text: nodeText(a), Title: snippetOf(a)}

		if reason, rejected := rejectReason(l); rejected {
			f.log.Debug("link rejected", "href", l.Href, "reason", reason)
			return true
		}
		if seen[l.Href] {
			return true
		}
		seen[l.Href] = true

		out = append(out, domain.SearchCandidate{
			Name:    l.Text,
			URL:     resolve(base, l.Href),
			Snippet: l.Title,
		})
		return len(out) < MaxCandidates
	})

	return out, nil
}

func snippetOf(a *goquery.Selection) string {
	if t, ok := a.Attr("title"); ok && strings.TrimSpace(t) != "" {
		return cleanText(t)
	}
	if t, ok := a.Find("img").First().Attr("title"); ok {
		return cleanText(t)
	}
	return ""
}

func resolve(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
