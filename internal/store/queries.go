package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const sheetColumns = `id, name, source_url, specifications, key_specifications,
	variants, colors, total_specs, reconciled, last_error,
	last_checked_at, created_at, updated_at`

// Sheet queries.
const (
	querySaveSheet = `
		INSERT INTO spec_sheets (
			name, source_url, specifications, key_specifications,
			variants, colors, total_specs, reconciled,
			last_error, last_checked_at, created_at, updated_at
		) VALUES (
			@name, @source_url, @specifications, @key_specifications,
			@variants, @colors, @total_specs, @reconciled,
			'', now(), now(), now()
		)
		ON CONFLICT (source_url) DO UPDATE SET
			name = EXCLUDED.name,
			specifications = EXCLUDED.specifications,
			key_specifications = EXCLUDED.key_specifications,
			variants = EXCLUDED.variants,
			colors = EXCLUDED.colors,
			total_specs = EXCLUDED.total_specs,
			reconciled = EXCLUDED.reconciled,
			last_error = '',
			last_checked_at = now(),
			updated_at = now()
		RETURNING id, last_checked_at, created_at, updated_at`

	queryGetSheet = `
		SELECT ` + sheetColumns + `
		FROM spec_sheets
		WHERE id = $1`

	queryListStaleSheets = `
		SELECT ` + sheetColumns + `
		FROM spec_sheets
		WHERE last_checked_at IS NULL OR last_checked_at < $1
		ORDER BY last_checked_at ASC NULLS FIRST
		LIMIT $2`

	queryMarkSheetChecked = `
		UPDATE spec_sheets SET
			last_checked_at = now(),
			last_error = $2
		WHERE id = $1`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`
)
