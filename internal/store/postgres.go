package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
// Its methods are covered by the integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the connection pool.
type PostgresOption func(*pgxpool.Config)

// WithMaxConns sets the pool's connection limit.
func WithMaxConns(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // pool size from validated config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// SaveSheet inserts or replaces a sheet by source URL. A save counts as a
// successful check, so last_error is cleared and last_checked_at bumped.
func (s *PostgresStore) SaveSheet(ctx context.Context, sheet *domain.SpecSheet) error {
	specs, err := json.Marshal(nonNil(sheet.Specifications))
	if err != nil {
		return fmt.Errorf("marshaling specifications: %w", err)
	}
	keySpecs, err := json.Marshal(nonNil(sheet.KeySpecifications))
	if err != nil {
		return fmt.Errorf("marshaling key specifications: %w", err)
	}
	variants, err := json.Marshal(nonNil(sheet.Variants))
	if err != nil {
		return fmt.Errorf("marshaling variants: %w", err)
	}
	colors, err := json.Marshal(nonNil(sheet.Colors))
	if err != nil {
		return fmt.Errorf("marshaling colors: %w", err)
	}

	args := pgx.NamedArgs{
		"name":               sheet.Name,
		"source_url":         sheet.SourceURL,
		"specifications":     specs,
		"key_specifications": keySpecs,
		"variants":           variants,
		"colors":             colors,
		"total_specs":        sheet.TotalSpecs,
		"reconciled":         sheet.Reconciled,
	}

	if err := s.pool.QueryRow(ctx, querySaveSheet, args).Scan(
		&sheet.ID, &sheet.LastCheckedAt, &sheet.CreatedAt, &sheet.UpdatedAt,
	); err != nil {
		return fmt.Errorf("saving sheet: %w", err)
	}
	sheet.LastError = ""
	return nil
}

// GetSheet retrieves a sheet by its UUID.
func (s *PostgresStore) GetSheet(ctx context.Context, id string) (*domain.SpecSheet, error) {
	sheet := &domain.SpecSheet{}
	err := scanSheet(s.pool.QueryRow(ctx, queryGetSheet, id), sheet)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting sheet: %w", err)
	}
	return sheet, nil
}

// ListSheets queries sheets with optional filters, returning results and total count.
func (s *PostgresStore) ListSheets(
	ctx context.Context,
	q *SheetQuery,
) ([]domain.SpecSheet, int, error) {
	if q == nil {
		q = &SheetQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting sheets: %w", err)
	}

	sheets, err := s.querySheets(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return sheets, total, nil
}

// ListStaleSheets returns sheets never checked or last checked before
// now minus olderThan, oldest first.
func (s *PostgresStore) ListStaleSheets(
	ctx context.Context,
	olderThan time.Duration,
	limit int,
) ([]domain.SpecSheet, error) {
	cutoff := time.Now().Add(-olderThan)
	return s.querySheets(ctx, queryListStaleSheets, cutoff, limit)
}

// MarkSheetChecked records a refresh attempt that did not replace the
// sheet's data. An empty errText clears the last error.
func (s *PostgresStore) MarkSheetChecked(ctx context.Context, id string, errText string) error {
	tag, err := s.pool.Exec(ctx, queryMarkSheetChecked, id, errText)
	if err != nil {
		return fmt.Errorf("marking sheet checked: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertJobRun records the start of a scheduled job and returns its UUID.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status and metadata.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a specific job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// querySheets runs a sheet select and scans every row.
func (s *PostgresStore) querySheets(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.SpecSheet, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sheets: %w", err)
	}
	defer rows.Close()

	var sheets []domain.SpecSheet
	for rows.Next() {
		var sheet domain.SpecSheet
		if err := scanSheet(rows, &sheet); err != nil {
			return nil, fmt.Errorf("scanning sheet: %w", err)
		}
		sheets = append(sheets, sheet)
	}
	return sheets, rows.Err()
}

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

// scanSheet scans a full spec_sheets row in sheetColumns order.
func scanSheet(row scannable, sheet *domain.SpecSheet) error {
	var specs, keySpecs, variants, colors []byte
	if err := row.Scan(
		&sheet.ID, &sheet.Name, &sheet.SourceURL, &specs, &keySpecs,
		&variants, &colors, &sheet.TotalSpecs, &sheet.Reconciled, &sheet.LastError,
		&sheet.LastCheckedAt, &sheet.CreatedAt, &sheet.UpdatedAt,
	); err != nil {
		return err
	}

	for _, col := range []struct {
		name string
		raw  []byte
		dest any
	}{
		{"specifications", specs, &sheet.Specifications},
		{"key_specifications", keySpecs, &sheet.KeySpecifications},
		{"variants", variants, &sheet.Variants},
		{"colors", colors, &sheet.Colors},
	} {
		if err := json.Unmarshal(col.raw, col.dest); err != nil {
			return fmt.Errorf("decoding %s: %w", col.name, err)
		}
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
