package reconcile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// Schema errors.
var (
	ErrMissingField = errors.New("missing required field")
	ErrWrongType    = errors.New("field has wrong type")
)

var knownGroups = func() map[string]domain.Group {
	m := make(map[string]domain.Group)
	for _, g := range append(domain.Groups(), domain.GroupPricing) {
		m[strings.ToLower(string(g))] = g
	}
	return m
}()

// validateRecord checks the decoded object against the record schema and
// converts it. Entries missing required members are dropped; excluded and
// duplicate specs are filtered the same way extraction filters them.
func validateRecord(obj map[string]any) (*domain.ReconciledResult, error) {
	name, ok := attrString(obj, "name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name: %w", ErrMissingField)
	}

	rawSpecs, err := attrArray(obj, "specifications")
	if err != nil {
		return nil, err
	}
	rawKeys, err := attrArray(obj, "keySpecifications")
	if err != nil {
		return nil, err
	}

	sourceURL, _ := attrString(obj, "sourceUrl")

	out := &domain.ReconciledResult{
		Name:              strings.TrimSpace(name),
		SourceURL:         sourceURL,
		Specifications:    filterSpecs(toSpecs(rawSpecs)),
		KeySpecifications: toKeySpecs(rawKeys),
		Variants:          attrStrings(obj, "variants"),
		Colors:            attrStrings(obj, "colors"),
	}
	out.TotalSpecs = len(out.Specifications)

	return out, nil
}

func toSpecs(raw []any) []domain.CanonicalSpec {
	specs := make([]domain.CanonicalSpec, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		group, gok := attrText(m, "group")
		name, nok := attrText(m, "name")
		value, vok := attrText(m, "value")
		if !gok || !nok || !vok {
			continue
		}
		order, ok := attrInt(m, "sortOrder")
		if !ok {
			order = i
		}
		specs = append(specs, domain.CanonicalSpec{
			Group:     normalizeGroup(group),
			Name:      name,
			Value:     value,
			SortOrder: order,
		})
	}
	return specs
}

// filterSpecs drops excluded specs and later (group, name) duplicates.
func filterSpecs(specs []domain.CanonicalSpec) []domain.CanonicalSpec {
	seen := make(map[string]bool, len(specs))
	out := make([]domain.CanonicalSpec, 0, len(specs))
	for _, s := range specs {
		if s.Excluded() || seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		out = append(out, s)
	}
	return out
}

func toKeySpecs(raw []any) []domain.KeySpec {
	out := make([]domain.KeySpec, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, tok := attrText(m, "title")
		value, vok := attrText(m, "value")
		if !tok || !vok {
			continue
		}
		icon, _ := attrText(m, "icon")
		order, ok := attrInt(m, "sortOrder")
		if !ok {
			order = i
		}
		out = append(out, domain.KeySpec{Icon: icon, Title: title, Value: value, SortOrder: order})
	}
	return out
}

// normalizeGroup maps a group name onto the taxonomy case-insensitively.
// Unknown groups land in Other.
func normalizeGroup(s string) domain.Group {
	if g, ok := knownGroups[strings.ToLower(s)]; ok {
		return g
	}
	return domain.GroupOther
}

// attrString extracts a string attribute.
func attrString(attrs map[string]any, key string) (string, bool) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// attrText extracts a non-empty scalar attribute as collapsed text. Numbers
// and booleans are accepted since completions often emit "value": 5000.
func attrText(attrs map[string]any, key string) (string, bool) {
	var s string
	switch v := attrs[key].(type) {
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	default:
		return "", false
	}
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, "*", "")), " ")
	return s, s != ""
}

// attrInt extracts an integer attribute from a JSON number or numeric string.
func attrInt(attrs map[string]any, key string) (int, bool) {
	switch n := attrs[key].(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

func attrArray(attrs map[string]any, key string) ([]any, error) {
	v, ok := attrs[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingField)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, ErrWrongType)
	}
	return arr, nil
}

// attrStrings extracts an optional array of strings, skipping non-strings.
func attrStrings(attrs map[string]any, key string) []string {
	arr, _ := attrs[key].([]any)
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
