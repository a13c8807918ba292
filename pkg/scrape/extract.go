package scrape

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/donaldgifford/phone-spec-scraper/pkg/taxonomy"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Extractor turns a product page into a normalized ExtractionResult.
type Extractor struct {
	fetcher        Fetcher
	resolver       *taxonomy.Resolver
	log            *slog.Logger
	onUnclassified func(label string)
}

// ExtractorOption configures the Extractor.
type ExtractorOption func(*Extractor)

// WithResolver overrides the default label resolver.
func WithResolver(r *taxonomy.Resolver) ExtractorOption {
	return func(e *Extractor) {
		e.resolver = r
	}
}

// WithExtractorLogger sets the logger.
func WithExtractorLogger(l *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.log = l
	}
}

// WithUnclassifiedHook registers a callback for labels neither the table
// nor the classifier recognise. Those rows are dropped either way.
func WithUnclassifiedHook(fn func(label string)) ExtractorOption {
	return func(e *Extractor) {
		e.onUnclassified = fn
	}
}

// NewExtractor creates an Extractor.
func NewExtractor(fetcher Fetcher, opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		fetcher:  fetcher,
		resolver: taxonomy.NewResolver(nil, nil),
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract fetches pageURL and parses it.
func (e *Extractor) Extract(ctx context.Context, pageURL string) (*domain.ExtractionResult, error) {
	if _, err := validatePageURL(pageURL); err != nil {
		return nil, err
	}

	body, err := e.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return e.Parse(pageURL, body)
}

// Parse extracts a result from an already fetched page body.
func (e *Extractor) Parse(pageURL string, body []byte) (*domain.ExtractionResult, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &ExtractionError{URL: pageURL, Reason: ReasonBadHTML, Err: err}
	}

	name := phoneName(doc)
	if name == "" {
		return nil, &ExtractionError{URL: pageURL, Reason: ReasonNoName}
	}

	b := newSheetBuilder(e.resolver, func(label string) {
		e.log.Debug("unclassified field dropped", "url", pageURL, "label", label)
		if e.onUnclassified != nil {
			e.onUnclassified(label)
		}
	})

	rows := 0
	doc.Find("table").Each(func(ti int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.ChildrenFiltered("td")
			if cells.Length() < 2 {
				return
			}
			rows++
			b.process(domain.RawField{
				Label:      nodeText(cells.Eq(0)),
				Value:      nodeText(cells.Eq(1)),
				TableIndex: ti,
			})
		})
	})

	if len(b.specs) == 0 {
		return nil, &ExtractionError{URL: pageURL, Reason: ReasonNoSpecs}
	}

	e.log.Debug("page extracted",
		"url", pageURL,
		"name", name,
		"rows", rows,
		"specs", len(b.specs),
		"skipped", b.skipped,
	)

	return &domain.ExtractionResult{
		Name:              name,
		SourceURL:         pageURL,
		Specifications:    b.specs,
		KeySpecifications: keySpecs(b.specs),
		Variants:          b.sortedVariants(),
		Colors:            nonNil(b.colors),
		TotalSpecs:        len(b.specs),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
