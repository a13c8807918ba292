package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ReconcileDuration returns a timeseries panel showing p50 and p95 AI
// reconciliation latencies.
func ReconcileDuration() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Reconcile Duration").
		Description("AI reconciliation call duration percentiles").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(Quantile(0.50, "pss_reconcile_duration_seconds"), "p50", "A")).
		WithTarget(PromQuery(Quantile(0.95, "pss_reconcile_duration_seconds"), "p95", "B")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ReconcileResults returns a timeseries panel showing reconciliation
// outcomes and unparseable completions by stage.
func ReconcileResults() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Reconcile Results / min").
		Description("Reconciliations by result and parse failures by stage").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(
			`sum(rate(`+Sel("pss_reconcile_total")+`[5m])) by (result) * 60`,
			"{{result}}", "A",
		)).
		WithTarget(PromQuery(
			`sum(rate(`+Sel("pss_reconcile_parse_failures_total")+`[5m])) by (stage) * 60`,
			"parse: {{stage}}", "B",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ReconcileTokens returns a stat panel showing completion tokens consumed in
// the past 24 hours.
func ReconcileTokens() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Tokens (24h)").
		Description("Completion tokens consumed by reconciliation in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(ThirdWidth).
		WithTarget(PromQuery(`sum(increase(`+Sel("pss_reconcile_tokens_total")+`[24h]))`, "", "A")).
		Unit("short").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeArea)
}
