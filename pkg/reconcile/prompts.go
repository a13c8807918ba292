package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

const systemMsg = `You normalize phone specification records for a product catalog. ` +
	`You reply with exactly one JSON object and nothing else.`

// reconcileTmpl is the reconciliation prompt template.
const reconcileTmpl = `Reformat and complete this phone specification record for "{{.Name}}".

Rules:
1. Keep every specification from the input. Do not drop, merge or rename entries.
2. If any of these are missing, add them from your knowledge of this phone:
{{- range .Critical}}
   - {{.Name}} (group {{.Group}})
{{- end}}
3. Use only these groups: {{.Groups}}.
4. Never include price information.
5. Reply with one JSON object with the keys name, sourceUrl, specifications,
   keySpecifications, variants, colors and totalSpecs. Each specification is
   {"group", "name", "value", "sortOrder"}. Each key specification is
   {"icon", "title", "value", "sortOrder"}.
6. No markdown, no code fences, no text before or after the JSON.

Input:
{{.Record}}`

var promptTmpl = template.Must(template.New("reconcile").Parse(reconcileTmpl))

// criticalSpecs are supplemented by the completion service when absent.
var criticalSpecs = []domain.CanonicalSpec{
	{Group: domain.GroupBattery, Name: domain.NameBatteryCapacity},
	{Group: domain.GroupPerformance, Name: domain.NameProcessor},
	{Group: domain.GroupPerformance, Name: domain.NameRAM},
	{Group: domain.GroupPerformance, Name: domain.NameStorage},
}

// RenderPrompt renders the reconciliation prompt for record.
func RenderPrompt(record *domain.ExtractionResult) (string, error) {
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}

	groups := make([]string, 0, len(domain.Groups()))
	for _, g := range domain.Groups() {
		groups = append(groups, string(g))
	}

	var buf bytes.Buffer
	err = promptTmpl.Execute(&buf, struct {
		Name     string
		Critical []domain.CanonicalSpec
		Groups   string
		Record   string
	}{
		Name:     record.Name,
		Critical: criticalSpecs,
		Groups:   strings.Join(groups, ", "),
		Record:   string(encoded),
	})
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
