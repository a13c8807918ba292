package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/phone-spec-scraper/tools/dashgen/rules"
)

var known = map[string]bool{
	"pss_http_requests_total":           true,
	"pss_http_request_duration_seconds": true,
	"pss:http_requests:rate5m":          true,
}

func TestExpr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{"known counter", `sum(rate(pss_http_requests_total[5m]))`, false},
		{"histogram bucket", `histogram_quantile(0.95, sum(rate(pss_http_request_duration_seconds_bucket[5m])) by (le))`, false},
		{"recording rule", `pss:http_requests:rate5m * 60`, false},
		{"unknown metric", `rate(pss_missing_total[5m])`, true},
		{"unknown histogram base", `pss_missing_seconds_bucket`, true},
		{"syntax error", `sum(rate(pss_http_requests_total[5m])`, true},
		{"scalar only", `time()`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr(tt.expr, known)
			assert.Equal(t, tt.wantErr, !res.Ok(), "errors: %v", res.Errors)
		})
	}
}

func TestDashboardJSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{"panels":[
		{"type":"row","title":"HTTP","panels":[
			{"type":"timeseries","title":"Rate","targets":[{"expr":"pss:http_requests:rate5m","refId":"A"}]},
			{"type":"stat","title":"Broken","targets":[
				{"expr":"pss_unknown","refId":"A"},
				{"expr":"up","refId":"A"}
			]}
		]},
		{"type":"stat","title":"","targets":[]}
	]}`)

	res := DashboardJSON(data, known)
	require.False(t, res.Ok())
	assert.Len(t, res.Errors, 3, "unknown metric, unknown up, duplicate refId: %v", res.Errors)
	assert.Len(t, res.Warnings, 2, "missing title and no targets: %v", res.Warnings)
}

func TestDashboardJSON_Malformed(t *testing.T) {
	t.Parallel()
	res := DashboardJSON([]byte("{"), known)
	assert.False(t, res.Ok())
}

func TestRules(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name: "g",
		Rules: []rules.Rule{
			{Record: "pss:errors:rate5m", Expr: `sum(rate(pss_http_requests_total{status=~"5.."}[5m]))`},
			{Alert: "Errors", Expr: `pss:errors:rate5m > 0`, Labels: map[string]string{"severity": "warning"}},
			{Alert: "NoSeverity", Expr: `up == 0`},
			{Record: "flat_name", Expr: `pss_http_requests_total`},
			{Expr: `up`},
		},
	}}}}

	res := Rules(cr, map[string]bool{"pss_http_requests_total": true, "up": true})
	assert.Len(t, res.Errors, 2, "missing severity and missing kind: %v", res.Errors)
	assert.Len(t, res.Warnings, 1, "flat recording rule name: %v", res.Warnings)
}

func TestRules_DoesNotMutateKnown(t *testing.T) {
	t.Parallel()

	base := map[string]bool{"pss_http_requests_total": true}
	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name:  "g",
		Rules: []rules.Rule{{Record: "pss:requests:rate5m", Expr: `rate(pss_http_requests_total[5m])`}},
	}}}}

	require.True(t, Rules(cr, base).Ok())
	assert.False(t, base["pss:requests:rate5m"])
}
