package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/donaldgifford/phone-spec-scraper/internal/metrics"
	"github.com/donaldgifford/phone-spec-scraper/internal/notify"
	"github.com/donaldgifford/phone-spec-scraper/internal/store"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// RefreshJobName is the job_runs name for refresh cycles.
const RefreshJobName = "refresh"

const (
	defaultStaleAfter   = 7 * 24 * time.Hour
	defaultRefreshBatch = 25
)

// ErrRefreshRunning is returned when a refresh cycle is already in progress.
var ErrRefreshRunning = errors.New("refresh already running")

// Refresh outcomes, also used as metric labels.
const (
	refreshUpdated  = "updated"
	refreshVerified = "verified"
	refreshFailed   = "failed"
	refreshDeferred = "deferred"
)

// RefreshSummary reports what one refresh cycle did.
type RefreshSummary struct {
	Checked  int `json:"checked"  example:"25"`
	Updated  int `json:"updated"  example:"22"`
	Verified int `json:"verified" example:"1"`
	Failed   int `json:"failed"   example:"1"`
	Deferred int `json:"deferred" example:"1"`
}

// Refresher re-extracts stored sheets whose last check is older than the
// stale threshold. A layout change (extraction error) is recorded on the
// sheet and notified; a transport error is recorded and retried next cycle.
type Refresher struct {
	store      store.Store
	extractor  PageExtractor
	reconciler RecordReconciler
	notifier   notify.Notifier
	log        *slog.Logger

	staleAfter time.Duration
	batchSize  int
	now        func() time.Time

	running atomic.Bool
}

// RefresherOption configures the Refresher.
type RefresherOption func(*Refresher)

// WithStaleAfter sets how old a sheet's last check must be to refresh it.
func WithStaleAfter(d time.Duration) RefresherOption {
	return func(r *Refresher) {
		if d > 0 {
			r.staleAfter = d
		}
	}
}

// WithBatchSize sets the maximum number of sheets per cycle.
func WithBatchSize(n int) RefresherOption {
	return func(r *Refresher) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithRefreshReconciler re-reconciles sheets that were stored reconciled.
// Without one, reconciled sheets are only verified, never overwritten with
// raw extraction data.
func WithRefreshReconciler(rr RecordReconciler) RefresherOption {
	return func(r *Refresher) {
		r.reconciler = rr
	}
}

// WithRefreshLogger sets a custom logger.
func WithRefreshLogger(l *slog.Logger) RefresherOption {
	return func(r *Refresher) {
		r.log = l
	}
}

// NewRefresher creates a Refresher with injected dependencies.
func NewRefresher(
	s store.Store,
	ex PageExtractor,
	n notify.Notifier,
	opts ...RefresherOption,
) *Refresher {
	r := &Refresher{
		store:      s,
		extractor:  ex,
		notifier:   n,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		staleAfter: defaultStaleAfter,
		batchSize:  defaultRefreshBatch,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunRefresh runs one refresh cycle and records it in job_runs.
func (r *Refresher) RunRefresh(ctx context.Context) (*RefreshSummary, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, ErrRefreshRunning
	}
	defer r.running.Store(false)

	start := time.Now()
	defer func() {
		metrics.RefreshDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := r.store.InsertJobRun(ctx, RefreshJobName)
	if err != nil {
		r.log.Warn("recording refresh start failed", "error", err)
	}

	summary, runErr := r.refresh(ctx)

	if runID != "" {
		status, errText := store.JobStatusSucceeded, ""
		if runErr != nil {
			status, errText = store.JobStatusFailed, runErr.Error()
		}
		// The cycle context may be cancelled; the bookkeeping write must still land.
		if err := r.store.CompleteJobRun(context.WithoutCancel(ctx), runID, status, errText, summary.Updated); err != nil {
			r.log.Warn("recording refresh completion failed", "error", err)
		}
	}

	r.log.Info("refresh cycle complete",
		"checked", summary.Checked,
		"updated", summary.Updated,
		"verified", summary.Verified,
		"failed", summary.Failed,
		"deferred", summary.Deferred,
		"duration", time.Since(start),
	)
	return summary, runErr
}

func (r *Refresher) refresh(ctx context.Context) (*RefreshSummary, error) {
	summary := &RefreshSummary{}

	sheets, err := r.store.ListStaleSheets(ctx, r.staleAfter, r.batchSize)
	if err != nil {
		return summary, fmt.Errorf("listing stale sheets: %w", err)
	}

	var failures []notify.FailurePayload
	for i := range sheets {
		if ctx.Err() != nil {
			r.notify(ctx, failures)
			return summary, ctx.Err()
		}

		sheet := &sheets[i]
		outcome, failure := r.refreshSheet(ctx, sheet)
		summary.Checked++
		metrics.RefreshSheetsTotal.WithLabelValues(outcome).Inc()

		switch outcome {
		case refreshUpdated:
			summary.Updated++
		case refreshVerified:
			summary.Verified++
		case refreshFailed:
			summary.Failed++
		case refreshDeferred:
			summary.Deferred++
		}
		if failure != nil {
			failures = append(failures, *failure)
		}
	}

	r.notify(ctx, failures)
	return summary, nil
}

func (r *Refresher) refreshSheet(ctx context.Context, sheet *domain.SpecSheet) (string, *notify.FailurePayload) {
	log := r.log.With("sheet", sheet.ID, "url", sheet.SourceURL)

	record, err := r.extractor.Extract(ctx, sheet.SourceURL)
	if err != nil {
		kind := Classify(err)
		r.markChecked(ctx, sheet.ID, err.Error())
		if kind != KindExtraction {
			log.Info("refresh deferred", "kind", kind, "error", err)
			return refreshDeferred, nil
		}
		log.Warn("refresh extraction failed", "error", err)
		return refreshFailed, &notify.FailurePayload{
			SheetID:   sheet.ID,
			SheetName: sheet.Name,
			SourceURL: sheet.SourceURL,
			Kind:      notify.KindExtraction,
			Error:     err.Error(),
			CheckedAt: r.now(),
		}
	}

	reconciled := false
	if sheet.Reconciled {
		if r.reconciler == nil {
			r.markChecked(ctx, sheet.ID, "")
			return refreshVerified, nil
		}
		out, err := r.reconciler.Reconcile(ctx, record)
		if err != nil {
			log.Info("refresh reconciliation failed", "error", err)
			r.markChecked(ctx, sheet.ID, "reconciling: "+err.Error())
			return refreshDeferred, nil
		}
		record = (*domain.ExtractionResult)(out.Result)
		reconciled = true
	}

	updated := domain.SheetFromResult(record, reconciled)
	if err := r.store.SaveSheet(ctx, updated); err != nil {
		log.Error("saving refreshed sheet failed", "error", err)
		return refreshDeferred, nil
	}
	return refreshUpdated, nil
}

func (r *Refresher) markChecked(ctx context.Context, id, errText string) {
	if err := r.store.MarkSheetChecked(ctx, id, errText); err != nil {
		r.log.Error("marking sheet checked failed", "sheet", id, "error", err)
	}
}

func (r *Refresher) notify(ctx context.Context, failures []notify.FailurePayload) {
	if len(failures) == 0 {
		return
	}
	if err := r.notifier.SendBatchFailure(context.WithoutCancel(ctx), failures); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		r.log.Error("sending refresh failure notification failed", "count", len(failures), "error", err)
	}
}
