package scrape

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/donaldgifford/phone-spec-scraper/pkg/taxonomy"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

// rowRule is one step of the row acceptance chain. The first rule whose
// skip returns true drops the row.
type rowRule struct {
	name string
	skip func(f domain.RawField) bool
}

var (
	bareDollarRe = regexp.MustCompile(`^\$\s*[\d.,]+$`)
	gbRe         = regexp.MustCompile(`(\d+)\s*GB`)
	colorSplitRe = regexp.MustCompile(`[,;/]`)
)

var rowSkipRules = []rowRule{
	{"label length", func(f domain.RawField) bool {
		n := utf8.RuneCountInString(f.Label)
		return n < 2 || n > 100
	}},
	{"empty value", func(f domain.RawField) bool {
		return f.Value == ""
	}},
	{"single character value", func(f domain.RawField) bool {
		return utf8.RuneCountInString(f.Value) == 1
	}},
	{"bare price value", func(f domain.RawField) bool {
		return bareDollarRe.MatchString(f.Value)
	}},
}

// skipReason reports the first skip rule matching f.
func skipReason(f domain.RawField) (string, bool) {
	for _, r := range rowSkipRules {
		if r.skip(f) {
			return r.name, true
		}
	}
	return "", false
}

// rowHandler claims a row ahead of the general mapping. It reports whether
// the row was claimed.
type rowHandler func(b *sheetBuilder, f domain.RawField) bool

var (
	mainCameraLabels  = map[string]bool{"Main Camera": true, "Triple": true, "Dual": true, "Quad": true}
	frontCameraLabels = map[string]bool{"Selfie camera": true, "Single": true, "Front Camera": true}
)

var rowHandlers = []rowHandler{
	func(b *sheetBuilder, f domain.RawField) bool {
		if f.Label == "Capacity" || (f.Label == "Type" && f.TableIndex > 5 && strings.Contains(f.Value, "mAh")) {
			b.add(domain.GroupBattery, domain.NameBatteryCapacity, f.Value)
			return true
		}
		return false
	},
	func(b *sheetBuilder, f domain.RawField) bool {
		if !strings.Contains(f.Value, "MP") {
			return false
		}
		switch {
		case mainCameraLabels[f.Label]:
			b.add(domain.GroupCamera, domain.NameMainCamera, f.Value)
		case frontCameraLabels[f.Label]:
			b.add(domain.GroupCamera, domain.NameFrontCamera, f.Value)
		default:
			return false
		}
		return true
	},
	func(b *sheetBuilder, f domain.RawField) bool {
		if f.Label != "RAM" || !strings.Contains(f.Value, "GB") || strings.Contains(f.Value, "$") {
			return false
		}
		b.add(domain.GroupPerformance, domain.NameRAM, f.Value)
		b.addVariants(f.Value)
		return true
	},
	func(b *sheetBuilder, f domain.RawField) bool {
		if f.Label != "Internal" || !strings.Contains(f.Value, "GB") {
			return false
		}
		b.add(domain.GroupPerformance, domain.NameStorage, f.Value)
		b.addVariants(f.Value)
		return true
	},
}

// sheetBuilder accumulates one page's accepted rows. It is not safe for
// concurrent use and lives for a single extraction.
type sheetBuilder struct {
	resolver       *taxonomy.Resolver
	onUnclassified func(label string)

	specs     []domain.CanonicalSpec
	seen      map[string]bool
	variants  map[string]int
	colors    []string
	colorSeen map[string]bool
	skipped   map[string]int
}

func newSheetBuilder(resolver *taxonomy.Resolver, onUnclassified func(string)) *sheetBuilder {
	return &sheetBuilder{
		resolver:       resolver,
		onUnclassified: onUnclassified,
		seen:           make(map[string]bool),
		variants:       make(map[string]int),
		colorSeen:      make(map[string]bool),
		skipped:        make(map[string]int),
	}
}

// process runs one raw row through the skip chain, color extraction, the
// special cases and finally the general mapping.
func (b *sheetBuilder) process(f domain.RawField) {
	f.Label = cleanText(f.Label)
	f.Value = cleanText(f.Value)

	if reason, skip := skipReason(f); skip {
		b.skipped[reason]++
		return
	}

	if strings.Contains(strings.ToLower(f.Label), "color") {
		b.addColors(f.Value)
	}

	for _, h := range rowHandlers {
		if h(b, f) {
			return
		}
	}

	c, stage := b.resolver.Resolve(f.Label)
	if stage == taxonomy.StageNone {
		if b.onUnclassified != nil {
			b.onUnclassified(f.Label)
		}
		return
	}
	b.add(c.Group, c.Name, f.Value)
}

// add appends a spec unless it is excluded or its (group, name) was already
// recorded.
func (b *sheetBuilder) add(group domain.Group, name, value string) {
	spec := domain.CanonicalSpec{Group: group, Name: name, Value: value}
	if spec.Excluded() || b.seen[spec.Key()] {
		return
	}
	b.seen[spec.Key()] = true
	spec.SortOrder = len(b.specs)
	b.specs = append(b.specs, spec)
}

func (b *sheetBuilder) addVariants(value string) {
	for _, m := range gbRe.FindAllStringSubmatch(value, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		b.variants[strconv.Itoa(n)+"GB"] = n
	}
}

func (b *sheetBuilder) addColors(value string) {
	for _, tok := range colorSplitRe.Split(value, -1) {
		tok = strings.TrimSpace(tok)
		if !plausibleColor(tok) || b.colorSeen[tok] {
			continue
		}
		b.colorSeen[tok] = true
		b.colors = append(b.colors, tok)
	}
}

func plausibleColor(tok string) bool {
	n := utf8.RuneCountInString(tok)
	if n < 1 || n > 49 || strings.Contains(tok, "%") {
		return false
	}
	lower := strings.ToLower(tok)
	for _, bad := range []string{"spec", "color", "available"} {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}

// sortedVariants returns the variant set ordered by numeric size.
func (b *sheetBuilder) sortedVariants() []string {
	out := make([]string, 0, len(b.variants))
	for v := range b.variants {
		out = append(out, v)
	}
	slices.SortFunc(out, func(x, y string) int {
		return b.variants[x] - b.variants[y]
	})
	return out
}
