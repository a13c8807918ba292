package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return newResource("pss-recording-rules", "pss-recording",
		record("pss:http_requests:rate5m",
			`sum(rate(pss_http_requests_total[5m]))`),
		record("pss:http_errors:rate5m",
			`sum(rate(pss_http_requests_total{status=~"5.."}[5m]))`),
		record("pss:source_fetch_errors:rate5m",
			`sum(rate(pss_source_fetch_errors_total[5m])) by (operation)`),
		record("pss:extraction_failures:rate5m",
			`sum(rate(pss_extractions_total{result!="success"}[5m]))`),
		record("pss:reconcile_failures:rate5m",
			`sum(rate(pss_reconcile_total{result!="success"}[5m]))`),
		record("pss:refresh_failures:rate5m",
			`sum(rate(pss_refresh_sheets_total{result="failed"}[5m]))`),
		record("pss:notification_duration:p95_5m",
			`histogram_quantile(0.95, sum(rate(pss_notification_duration_seconds_bucket[5m])) by (le))`),
	)
}
