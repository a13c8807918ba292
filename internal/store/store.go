// Package store defines the datastore abstraction for phone-spec-scraper.
// The HTTP API and refresh engine depend on the Store interface, never on
// concrete implementations. The scraping core never touches a store.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// ErrNotFound is returned when a sheet does not exist.
var ErrNotFound = errors.New("not found")

// Job statuses recorded in job_runs.
const (
	JobStatusRunning   = "running"
	JobStatusSucceeded = "succeeded"
	JobStatusFailed    = "failed"
)

// SheetQuery defines optional filters for sheet listings.
type SheetQuery struct {
	Name       *string // case-insensitive substring
	Reconciled *bool
	Failing    bool // only sheets whose last refresh recorded an error
	Limit      int  // default 50
	Offset     int
	OrderBy    string // "name", "updated_at", "last_checked_at"
}

// Store defines all data access operations for phone-spec-scraper.
type Store interface {
	// Sheets
	SaveSheet(ctx context.Context, s *domain.SpecSheet) error
	GetSheet(ctx context.Context, id string) (*domain.SpecSheet, error)
	ListSheets(ctx context.Context, q *SheetQuery) ([]domain.SpecSheet, int, error)
	ListStaleSheets(ctx context.Context, olderThan time.Duration, limit int) ([]domain.SpecSheet, error)
	MarkSheetChecked(ctx context.Context, id string, errText string) error

	// Jobs
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
