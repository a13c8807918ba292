// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/phone-spec-scraper/tools/dashgen/rules"
)

// histogramSuffixes are the series suffixes Prometheus derives from a
// histogram's base name.
var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

// Result collects validation findings. Errors fail generation; warnings are
// reported but do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a PromQL expression and checks every selected metric against
// known.
func Expr(expr string, known map[string]bool) Result {
	var res Result
	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("parsing %q: %v", expr, err)
		return res
	}
	for _, name := range metricNames(node) {
		if !isKnown(name, known) {
			res.errorf("unknown metric %q in %q", name, expr)
		}
	}
	return res
}

func metricNames(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// panelJSON is the subset of the dashboard model the validator reads.
type panelJSON struct {
	Type    string      `json:"type"`
	Title   string      `json:"title"`
	Panels  []panelJSON `json:"panels"`
	Targets []struct {
		Expr  string `json:"expr"`
		RefID string `json:"refId"`
	} `json:"targets"`
}

// Dashboard validates every query target in dash, including panels nested
// in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	data, err := json.Marshal(dash)
	if err != nil {
		return Result{Errors: []string{fmt.Sprintf("encoding dashboard: %v", err)}}
	}
	return DashboardJSON(data, known)
}

// DashboardJSON validates an encoded dashboard model.
func DashboardJSON(data []byte, known map[string]bool) Result {
	var res Result
	var model struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &model); err != nil {
		res.errorf("decoding dashboard: %v", err)
		return res
	}
	for i := range model.Panels {
		checkPanel(&res, &model.Panels[i], known)
	}
	return res
}

func checkPanel(res *Result, p *panelJSON, known map[string]bool) {
	if p.Type == "row" || len(p.Panels) > 0 {
		for i := range p.Panels {
			checkPanel(res, &p.Panels[i], known)
		}
		return
	}
	if p.Title == "" {
		res.warnf("panel without title")
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", p.Title)
	}
	seen := make(map[string]bool, len(p.Targets))
	for _, t := range p.Targets {
		if seen[t.RefID] {
			res.errorf("panel %q reuses refId %q", p.Title, t.RefID)
		}
		seen[t.RefID] = true
		if t.Expr == "" {
			res.errorf("panel %q target %s has no expression", p.Title, t.RefID)
			continue
		}
		res.merge(Expr(t.Expr, known))
	}
}

// Rules validates the expressions of a rule resource. Recording rule names
// are added to the known set so later rules in the same resource may refer
// to them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	names := make(map[string]bool, len(known))
	for k, v := range known {
		names[k] = v
	}

	for _, g := range cr.Spec.Groups {
		if len(g.Rules) == 0 {
			res.warnf("group %q has no rules", g.Name)
		}
		for _, r := range g.Rules {
			switch {
			case r.Record != "" && r.Alert != "":
				res.errorf("rule %q sets both record and alert", r.Record)
				continue
			case r.Record == "" && r.Alert == "":
				res.errorf("rule in group %q has neither record nor alert", g.Name)
				continue
			case r.Record != "" && strings.Count(r.Record, ":") < 2:
				res.warnf("recording rule %q does not follow level:metric:operation", r.Record)
			case r.Alert != "" && r.Labels["severity"] == "":
				res.errorf("alert %q has no severity", r.Alert)
			}
			res.merge(Expr(r.Expr, names))
			if r.Record != "" {
				names[r.Record] = true
			}
		}
	}
	return res
}
