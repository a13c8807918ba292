package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// phone-spec-scraper operational monitoring.
func AlertRules() PrometheusRule {
	return newResource("pss-alerts", "pss-alerts",
		alert("PssDown",
			`absent(up{job="phone-spec-scraper"})`, "2m", "critical",
			"Phone Spec Scraper is down",
			"The phone-spec-scraper job has been absent for more than 2 minutes."),
		alert("PssReadinessDown",
			`pss_readyz_up == 0`, "2m", "critical",
			"Phone Spec Scraper readiness check is failing",
			"The readiness probe has been unable to reach the database for more than 2 minutes."),
		alert("PssHighErrorRate",
			`pss:http_errors:rate5m / pss:http_requests:rate5m > 0.05`, "5m", "warning",
			"High HTTP error rate on Phone Spec Scraper",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		// Layout changes surface as extraction failures with no successes.
		alert("PssSourceLayoutChanged",
			`sum(rate(pss_extractions_total{result="extraction"}[15m])) > 0 and sum(rate(pss_extractions_total{result="success"}[15m])) == 0`,
			"15m", "critical",
			"Product pages no longer yield specifications",
			"Every extraction in the last 15 minutes found no spec table. The source site layout has likely changed."),
		alert("PssSourceFetchErrors",
			`sum(pss:source_fetch_errors:rate5m) > 0.1`, "10m", "warning",
			"Source site fetches are failing",
			"Search or product page fetches have failed at more than 0.1/s for 10 minutes."),
		alert("PssReconcileFailures",
			`pss:reconcile_failures:rate5m > 0.05`, "10m", "warning",
			"AI reconciliation failure rate is elevated",
			"Reconciliation calls are failing or returning unparseable output at more than 0.05/s."),
		alert("PssRefreshFailures",
			`pss:refresh_failures:rate5m > 0`, "30m", "warning",
			"Stored sheet refreshes are failing",
			"Refresh cycles have been recording failed sheets for more than 30 minutes."),
		alert("PssNotificationFailures",
			`increase(pss_notification_failures_total[5m]) > 0`, "1m", "warning",
			"Notification delivery failures detected",
			"One or more refresh notifications (Discord webhooks) have failed to send."),
	)
}
