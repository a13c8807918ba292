//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/phone-spec-scraper/internal/store"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pss_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testSheet(url string) *domain.SpecSheet {
	return &domain.SpecSheet{
		Name:      "Google Pixel 9",
		SourceURL: url,
		Specifications: []domain.CanonicalSpec{
			{Group: domain.GroupDisplay, Name: "Display Size", Value: "6.3 inches", SortOrder: 0},
			{Group: domain.GroupBattery, Name: "Battery Capacity", Value: "4700 mAh", SortOrder: 1},
		},
		KeySpecifications: []domain.KeySpec{
			{Icon: "smartphone", Title: "Display", Value: "6.3 inches"},
		},
		Variants:   []string{"128GB", "256GB"},
		TotalSpecs: 2,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_SaveSheet(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert and read back", func(t *testing.T) {
		sheet := testSheet("https://www.gsmarena.com/google_pixel_9-13219.php")
		require.NoError(t, s.SaveSheet(ctx, sheet))
		assert.NotEmpty(t, sheet.ID)
		require.NotNil(t, sheet.LastCheckedAt)

		got, err := s.GetSheet(ctx, sheet.ID)
		require.NoError(t, err)
		assert.Equal(t, sheet.Name, got.Name)
		assert.Equal(t, sheet.Specifications, got.Specifications)
		assert.Equal(t, sheet.KeySpecifications, got.KeySpecifications)
		assert.Equal(t, []string{"128GB", "256GB"}, got.Variants)
		assert.Empty(t, got.Colors)
		assert.NotNil(t, got.Colors)
	})

	t.Run("upsert by source url keeps id", func(t *testing.T) {
		url := "https://www.gsmarena.com/upsert-1.php"
		first := testSheet(url)
		require.NoError(t, s.SaveSheet(ctx, first))

		second := testSheet(url)
		second.Reconciled = true
		second.TotalSpecs = 1
		second.Specifications = second.Specifications[:1]
		require.NoError(t, s.SaveSheet(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt, second.CreatedAt)

		got, err := s.GetSheet(ctx, first.ID)
		require.NoError(t, err)
		assert.True(t, got.Reconciled)
		assert.Len(t, got.Specifications, 1)
	})
}

func TestPostgresStore_GetSheet_NotFound(t *testing.T) {
	s := setupPostgres(t)

	_, err := s.GetSheet(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_ListSheets(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for _, url := range []string{"https://x/a-1.php", "https://x/b-2.php", "https://x/c-3.php"} {
		require.NoError(t, s.SaveSheet(ctx, testSheet(url)))
	}
	other := testSheet("https://x/d-4.php")
	other.Name = "Samsung Galaxy S24"
	require.NoError(t, s.SaveSheet(ctx, other))

	all, total, err := s.ListSheets(ctx, &store.SheetQuery{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Len(t, all, 2)

	name := "galaxy"
	found, total, err := s.ListSheets(ctx, &store.SheetQuery{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Samsung Galaxy S24", found[0].Name)
}

func TestPostgresStore_StaleAndMarkChecked(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	sheet := testSheet("https://x/stale-1.php")
	require.NoError(t, s.SaveSheet(ctx, sheet))

	stale, err := s.ListStaleSheets(ctx, time.Hour, 10)
	require.NoError(t, err)
	assert.Empty(t, stale)

	stale, err = s.ListStaleSheets(ctx, -time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, stale, 1)

	require.NoError(t, s.MarkSheetChecked(ctx, sheet.ID, "No specifications found"))

	failing, _, err := s.ListSheets(ctx, &store.SheetQuery{Failing: true})
	require.NoError(t, err)
	require.Len(t, failing, 1)
	assert.Equal(t, "No specifications found", failing[0].LastError)

	err = s.MarkSheetChecked(ctx, "00000000-0000-0000-0000-000000000000", "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "refresh")
	require.NoError(t, err)
	require.NoError(t, s.CompleteJobRun(ctx, id, store.JobStatusSucceeded, "", 3))

	runs, err := s.ListJobRuns(ctx, "refresh", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, store.JobStatusSucceeded, runs[0].Status)
	require.NotNil(t, runs[0].RowsAffected)
	assert.Equal(t, 3, *runs[0].RowsAffected)
	assert.NotNil(t, runs[0].CompletedAt)
}
