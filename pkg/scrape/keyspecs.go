package scrape

import (
	"strings"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

type specMatch func(s domain.CanonicalSpec) bool

func inGroupNamed(g domain.Group, words ...string) specMatch {
	return func(s domain.CanonicalSpec) bool {
		if s.Group != g {
			return false
		}
		for _, w := range words {
			if strings.Contains(s.Name, w) {
				return true
			}
		}
		return false
	}
}

// keySpecRule picks the first spec matching any of its matchers, tried in
// order.
type keySpecRule struct {
	icon  string
	title string
	pick  []specMatch
}

var keySpecRules = []keySpecRule{
	{"smartphone", "Display", []specMatch{inGroupNamed(domain.GroupDisplay, "Size", "Display")}},
	{"cpu", "Processor", []specMatch{
		inGroupNamed(domain.GroupPerformance, "Processor"),
		inGroupNamed(domain.GroupPerformance, "CPU"),
	}},
	{"camera", "Camera", []specMatch{inGroupNamed(domain.GroupCamera, "Main")}},
	{"battery", "Battery", []specMatch{
		inGroupNamed(domain.GroupBattery, "Capacity"),
		inGroupNamed(domain.GroupBattery, "Charging"),
	}},
}

func firstMatch(specs []domain.CanonicalSpec, pick []specMatch) (domain.CanonicalSpec, bool) {
	for _, m := range pick {
		for _, s := range specs {
			if m(s) {
				return s, true
			}
		}
	}
	return domain.CanonicalSpec{}, false
}

// keySpecs derives the highlight list. When fewer than every category
// resolves, the list is padded with NotFound placeholders to exactly one
// entry per category.
func keySpecs(specs []domain.CanonicalSpec) []domain.KeySpec {
	found := make([]domain.KeySpec, 0, len(keySpecRules))
	padded := make([]domain.KeySpec, 0, len(keySpecRules))

	for _, r := range keySpecRules {
		spec, ok := firstMatch(specs, r.pick)
		ks := domain.KeySpec{Icon: r.icon, Title: r.title, Value: domain.NotFound}
		if ok {
			ks.Value = spec.Value
			ks.SortOrder = len(found)
			found = append(found, ks)
		}
		ks.SortOrder = len(padded)
		padded = append(padded, ks)
	}

	if len(found) < len(keySpecRules) {
		return padded
	}
	return found
}
