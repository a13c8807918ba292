// Package engine is the public boundary over the scraping and
// reconciliation core. Every operation returns an envelope; no error value
// or panic escapes it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/phone-spec-scraper/internal/metrics"
	"github.com/donaldgifford/phone-spec-scraper/pkg/reconcile"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Searcher finds product candidates for a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchCandidate, error)
}

// PageExtractor turns a product page URL into a normalized record.
type PageExtractor interface {
	Extract(ctx context.Context, url string) (*domain.ExtractionResult, error)
}

// RecordReconciler sends a record through the completion service.
type RecordReconciler interface {
	Reconcile(ctx context.Context, record *domain.ExtractionResult) (*reconcile.Outcome, error)
	Backend() string
}

// SheetSaver persists finished records.
type SheetSaver interface {
	SaveSheet(ctx context.Context, s *domain.SpecSheet) error
}

// defaultSharedTimeout bounds a collapsed search or extraction once it no
// longer follows any single caller's context.
const defaultSharedTimeout = 2 * time.Minute

// Service wires the core components behind envelope-returning operations.
// Identical concurrent searches and extractions share one fetch. Each caller
// waits on its own context; cancelling one caller leaves the shared fetch
// running for the others.
type Service struct {
	finder        Searcher
	extractor     PageExtractor
	reconciler    RecordReconciler
	sheets        SheetSaver
	log           *slog.Logger
	sharedTimeout time.Duration

	group singleflight.Group
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithReconciler enables Reconcile and reconciling ingests.
func WithReconciler(r RecordReconciler) ServiceOption {
	return func(s *Service) {
		s.reconciler = r
	}
}

// WithSheetSaver enables saving ingested records.
func WithSheetSaver(ss SheetSaver) ServiceOption {
	return func(s *Service) {
		s.sheets = ss
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = l
	}
}

// WithSharedTimeout bounds the fetch shared by collapsed callers.
func WithSharedTimeout(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.sharedTimeout = d
		}
	}
}

// NewService creates a Service over the given finder and extractor.
func NewService(finder Searcher, extractor PageExtractor, opts ...ServiceOption) *Service {
	s := &Service{
		finder:    finder,
		extractor: extractor,
		log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		sharedTimeout: defaultSharedTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ReconcileEnabled reports whether a completion backend is configured.
func (s *Service) ReconcileEnabled() bool {
	return s.reconciler != nil
}

// CountUnclassified is an extractor hook that counts labels no taxonomy
// entry matched.
func CountUnclassified(string) {
	metrics.UnclassifiedFieldsTotal.Inc()
}

// Search finds product candidates for query.
func (s *Service) Search(ctx context.Context, query string) (resp *SearchResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("search", r)
			resp = &SearchResponse{
				Candidates: []domain.SearchCandidate{},
				Error:      internalErrorMessage,
				ErrorKind:  KindInternal,
			}
		}
	}()

	candidates, err := s.search(ctx, query)
	if err != nil {
		kind := Classify(err)
		resp = &SearchResponse{
			Candidates: []domain.SearchCandidate{},
			Error:      publicMessage(err, kind),
			ErrorKind:  kind,
		}
		if kind == KindNotFound {
			resp.Suggestion = SuggestionShorterQuery
			resp.Suggestion2 = SuggestionPasteURL
		}
		return resp
	}

	return &SearchResponse{Success: true, Candidates: candidates}
}

// Extract fetches and normalizes one product page.
func (s *Service) Extract(ctx context.Context, url string) (resp *ExtractResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("extract", r)
			resp = &ExtractResponse{Error: internalErrorMessage, ErrorKind: KindInternal}
		}
	}()

	result, err := s.extract(ctx, url)
	if err != nil {
		kind := Classify(err)
		return &ExtractResponse{Error: publicMessage(err, kind), ErrorKind: kind}
	}
	return &ExtractResponse{Success: true, Data: result}
}

// Reconcile runs record through the completion service. Failures carry the
// input as Fallback.
func (s *Service) Reconcile(ctx context.Context, record *domain.ExtractionResult) (resp *ReconcileResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("reconcile", r)
			resp = &ReconcileResponse{
				Error:     internalErrorMessage,
				ErrorKind: KindInternal,
				Fallback:  record,
			}
		}
	}()

	out, err := s.reconcile(ctx, record)
	if err != nil {
		kind := Classify(err)
		resp = &ReconcileResponse{
			Error:     publicMessage(err, kind),
			ErrorKind: kind,
			Fallback:  record,
		}
		var pErr *reconcile.ParseError
		if errors.As(err, &pErr) {
			resp.Debug = pErr
		}
		return resp
	}

	return &ReconcileResponse{
		Success: true,
		Data:    out.Result,
		Usage:   &Usage{TotalTokens: out.Usage.TotalTokens},
		Model:   out.Model,
	}
}

// Ingest resolves a query or URL to a record, optionally reconciles it and
// optionally saves it.
func (s *Service) Ingest(ctx context.Context, req IngestRequest) (resp *IngestResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("ingest", r)
			resp = &IngestResponse{Error: internalErrorMessage, ErrorKind: KindInternal}
		}
	}()

	resp = &IngestResponse{}
	fail := func(err error) *IngestResponse {
		resp.ErrorKind = Classify(err)
		resp.Error = publicMessage(err, resp.ErrorKind)
		return resp
	}

	if req.Save && s.sheets == nil {
		return fail(errStoreDisabled)
	}
	if req.Reconcile && s.reconciler == nil {
		return fail(errReconcileDisabled)
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		if strings.TrimSpace(req.Query) == "" {
			return fail(errNoQueryOrURL)
		}
		candidates, err := s.search(ctx, req.Query)
		if err != nil {
			if Classify(err) == KindNotFound {
				resp.Suggestion = SuggestionShorterQuery
				resp.Suggestion2 = SuggestionPasteURL
			}
			return fail(err)
		}
		resp.Candidates = candidates
		if req.CandidateIndex < 0 || req.CandidateIndex >= len(candidates) {
			return fail(fmt.Errorf("%w: %d of %d", errCandidateIndex, req.CandidateIndex, len(candidates)))
		}
		url = candidates[req.CandidateIndex].URL
	}

	record, err := s.extract(ctx, url)
	if err != nil {
		return fail(err)
	}
	resp.Data = record

	if req.Reconcile {
		out, err := s.reconcile(ctx, record)
		if err != nil {
			resp.ReconcileError = publicMessage(err, Classify(err))
		} else {
			resp.Data = (*domain.ExtractionResult)(out.Result)
			resp.Reconciled = true
			resp.Usage = &Usage{TotalTokens: out.Usage.TotalTokens}
		}
	}

	if req.Save {
		sheet := domain.SheetFromResult(resp.Data, resp.Reconciled)
		if err := s.sheets.SaveSheet(ctx, sheet); err != nil {
			s.log.Error("saving ingested sheet failed", "url", url, "error", err)
			return fail(fmt.Errorf("saving sheet: %w", err))
		}
		resp.SheetID = sheet.ID
	}

	resp.Success = true
	return resp
}

func (s *Service) search(ctx context.Context, query string) ([]domain.SearchCandidate, error) {
	query = strings.TrimSpace(query)
	v, shared, err := s.shared(ctx, "search", "search\x00"+query, func(ctx context.Context) (any, error) {
		start := time.Now()
		candidates, err := s.finder.Search(ctx, query)
		metrics.SourceFetchDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
		if err != nil && Classify(err) == KindTransport {
			metrics.SourceFetchErrorsTotal.WithLabelValues("search").Inc()
		}
		if err == nil {
			metrics.SearchCandidates.Observe(float64(len(candidates)))
		}
		return candidates, err
	})
	if err != nil {
		s.log.Debug("search failed", "query", query, "shared", shared, "error", err)
		return nil, err
	}
	return v.([]domain.SearchCandidate), nil
}

func (s *Service) extract(ctx context.Context, url string) (*domain.ExtractionResult, error) {
	url = strings.TrimSpace(url)
	v, _, err := s.shared(ctx, "extract", "extract\x00"+url, func(ctx context.Context) (any, error) {
		start := time.Now()
		result, err := s.extractor.Extract(ctx, url)
		metrics.SourceFetchDuration.WithLabelValues("extract").Observe(time.Since(start).Seconds())

		kind := Classify(err)
		switch kind {
		case "":
			metrics.ExtractionsTotal.WithLabelValues("success").Inc()
			metrics.ExtractionSpecs.Observe(float64(result.TotalSpecs))
		case KindTransport:
			metrics.SourceFetchErrorsTotal.WithLabelValues("extract").Inc()
			metrics.ExtractionsTotal.WithLabelValues(string(kind)).Inc()
		default:
			metrics.ExtractionsTotal.WithLabelValues(string(kind)).Inc()
		}
		return result, err
	})
	if err != nil {
		s.log.Info("extraction failed", "url", url, "error", err)
		return nil, err
	}
	return v.(*domain.ExtractionResult), nil
}

// shared runs fn once per key across concurrent callers. fn gets a context
// detached from ctx and bounded by sharedTimeout, and the caller stops
// waiting as soon as its own ctx is done.
func (s *Service) shared(
	ctx context.Context,
	op, key string,
	fn func(context.Context) (any, error),
) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	ch := s.group.DoChan(key, func() (_ any, err error) {
		defer func() {
			if r := recover(); r != nil {
				s.logPanic(op, r)
				err = fmt.Errorf("%s: recovered panic: %v", op, r)
			}
		}()
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sharedTimeout)
		defer cancel()
		return fn(fctx)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (s *Service) reconcile(ctx context.Context, record *domain.ExtractionResult) (*reconcile.Outcome, error) {
	if s.reconciler == nil {
		return nil, errReconcileDisabled
	}

	start := time.Now()
	out, err := s.reconciler.Reconcile(ctx, record)
	metrics.ReconcileDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := Classify(err)
		metrics.ReconcileTotal.WithLabelValues(string(kind)).Inc()
		var pErr *reconcile.ParseError
		if errors.As(err, &pErr) {
			metrics.ReconcileParseFailuresTotal.WithLabelValues(pErr.Stage).Inc()
		}
		s.log.Warn("reconciliation failed",
			"backend", s.reconciler.Backend(),
			"kind", kind,
			"error", err,
		)
		return nil, err
	}

	metrics.ReconcileTotal.WithLabelValues("success").Inc()
	metrics.ReconcileTokensTotal.Add(float64(out.Usage.TotalTokens))
	return out, nil
}

func (s *Service) logPanic(op string, r any) {
	s.log.Error("recovered panic at engine boundary",
		"op", op,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}
