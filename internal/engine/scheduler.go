package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/phone-spec-scraper/internal/metrics"
)

// Scheduler runs refresh cycles on a fixed interval.
type Scheduler struct {
	cron      *cron.Cron
	refresher *Refresher
	log       *slog.Logger
	timeout   time.Duration

	refreshEntryID cron.EntryID
}

// NewScheduler creates a Scheduler that runs a refresh every interval. Each
// cycle is bounded by timeout; zero means the interval itself.
func NewScheduler(
	r *Refresher,
	interval time.Duration,
	timeout time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if interval <= 0 {
		return nil, errors.New("refresh interval must be positive")
	}
	if timeout <= 0 {
		timeout = interval
	}

	s := &Scheduler{
		cron:      cron.New(),
		refresher: r,
		log:       log,
		timeout:   timeout,
	}

	id, err := s.cron.AddFunc("@every "+interval.String(), s.runRefresh)
	if err != nil {
		return nil, err
	}
	s.refreshEntryID = id

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next refresh time as a gauge.
func (s *Scheduler) SyncNextRunTimestamp() {
	entry := s.cron.Entry(s.refreshEntryID)
	if !entry.Next.IsZero() {
		metrics.SchedulerNextRefreshTimestamp.Set(float64(entry.Next.Unix()))
	}
}

func (s *Scheduler) runRefresh() {
	defer s.SyncNextRunTimestamp()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	s.log.Info("scheduled refresh starting")
	if _, err := s.refresher.RunRefresh(ctx); err != nil {
		if errors.Is(err, ErrRefreshRunning) {
			s.log.Info("scheduled refresh skipped, previous cycle still running")
			return
		}
		s.log.Error("scheduled refresh failed", "error", err)
	}
}
