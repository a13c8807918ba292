// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/phone-spec-scraper/tools/dashgen/panels"
)

// OverviewUID is the stable uid of the overview dashboard.
const OverviewUID = "pss-overview"

// BuildOverview constructs the PSS Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("PSS Overview").
		Uid(OverviewUID).
		Tags([]string{"pss", panels.Job}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.InFlightStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Source Site").
		WithPanel(panels.FetchLatency()).
		WithPanel(panels.FetchErrors()).
		WithPanel(panels.SearchCandidates()))

	b.WithRow(dashboard.NewRowBuilder("Extraction").
		WithPanel(panels.ExtractionResults()).
		WithPanel(panels.ExtractionFailures()).
		WithPanel(panels.UnclassifiedFields()))

	b.WithRow(dashboard.NewRowBuilder("Reconciliation").
		WithPanel(panels.ReconcileDuration()).
		WithPanel(panels.ReconcileResults()).
		WithPanel(panels.ReconcileTokens()))

	b.WithRow(dashboard.NewRowBuilder("Refresh").
		WithPanel(panels.NextRefresh()).
		WithPanel(panels.RefreshOutcomes()).
		WithPanel(panels.RefreshDuration()))

	b.WithRow(dashboard.NewRowBuilder("Notifications").
		WithPanel(panels.NotificationLatency()).
		WithPanel(panels.NotificationFailures()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
