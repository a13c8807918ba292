package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FetchLatency returns a timeseries panel showing p95 source fetch latency
// split by operation.
func FetchLatency() *timeseries.PanelBuilder {
	expr := `histogram_quantile(0.95, sum(rate(` + Sel("pss_source_fetch_duration_seconds_bucket") +
		`[5m])) by (le, operation))`
	return timeseries.NewPanelBuilder().
		Title("Fetch Latency (p95)").
		Description("95th percentile source site fetch duration by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(expr, "{{operation}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// FetchErrors returns a timeseries panel showing source fetch errors per
// minute by operation.
func FetchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Fetch Errors / min").
		Description("Failed source site fetches per minute by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`pss:source_fetch_errors:rate5m * 60`, "{{operation}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// SearchCandidates returns a timeseries panel showing the median number of
// candidates per search.
func SearchCandidates() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Candidates per Search").
		Description("Median and p95 search candidate counts").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, "pss_search_candidates"), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, "pss_search_candidates"), "p95", "B")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
