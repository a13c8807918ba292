package main

import "errors"

// KnownMetrics is the set of metric names exported by phone-spec-scraper
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"pss_http_request_duration_seconds": true,
	"pss_http_requests_total":           true,
	"pss_http_requests_in_flight":       true,

	// Health metrics.
	"pss_healthz_up": true,
	"pss_readyz_up":  true,

	// Source site metrics.
	"pss_source_fetch_duration_seconds": true,
	"pss_source_fetch_errors_total":     true,
	"pss_search_candidates":             true,

	// Extraction metrics.
	"pss_extractions_total":         true,
	"pss_extraction_specs":          true,
	"pss_unclassified_fields_total": true,

	// Reconciliation metrics.
	"pss_reconcile_duration_seconds":     true,
	"pss_reconcile_total":                true,
	"pss_reconcile_parse_failures_total": true,
	"pss_reconcile_tokens_total":         true,

	// Refresh and notification metrics.
	"pss_refresh_sheets_total":             true,
	"pss_refresh_duration_seconds":         true,
	"pss_scheduler_next_refresh_timestamp": true,
	"pss_notification_duration_seconds":    true,
	"pss_notification_failures_total":      true,

	// Recording rules.
	"pss:http_requests:rate5m":         true,
	"pss:http_errors:rate5m":           true,
	"pss:source_fetch_errors:rate5m":   true,
	"pss:extraction_failures:rate5m":   true,
	"pss:reconcile_failures:rate5m":    true,
	"pss:refresh_failures:rate5m":      true,
	"pss:notification_duration:p95_5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
