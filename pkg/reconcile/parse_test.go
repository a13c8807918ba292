package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adjacent objects", `[{"a":1}{"b":2}]`, `[{"a":1},{"b":2}]`},
		{"adjacent members", "{\"a\": \"x\"\n\"b\": 2}", "{\"a\": \"x\",\n\"b\": 2}"},
		{"number then member", "{\"a\": 1\n \"b\": true\n \"c\": null}", "{\"a\": 1,\n \"b\": true,\n \"c\": null}"},
		{"trailing comma in array", `[1, 2, ]`, `[1, 2 ]`},
		{"trailing comma in object", "{\"a\": 1,\n}", "{\"a\": 1\n}"},
		{"broken string", "{\"a\": \"one  \n   two\"}", `{"a": "one two"}`},
		{"punctuation inside strings untouched", `{"a": "x}{y, ]"}`, `{"a": "x}{y, ]"}`},
		{"escaped quote", `{"a": "say \"hi\"" "b": 1}`, `{"a": "say \"hi\"", "b": 1}`},
		{"valid input unchanged", `{"a": [1, 2], "b": {"c": false}}`, `{"a": [1, 2], "b": {"c": false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := repairJSON(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, json.Valid([]byte(got)), got)
		})
	}
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"plain", `{"name": "x"}`, ""},
		{"fenced", "```json\n{\"name\": \"x\"}\n```", ""},
		{"upper fence", "```JSON\n{\"name\": \"x\"}\n```", ""},
		{"prose around", "Sure! {\"name\": \"x\"} Let me know.", ""},
		{"needs repair", "{\"name\": \"x\"\n\"other\": 1,}", ""},
		{"array reply", `[{"name": "x"}]`, ""},
		{"no object", `["name"]`, StageSlice},
		{"reversed braces", `} nope {`, StageSlice},
		{"json null", `null`, StageSlice},
		{"garbage between braces", `{ this is not json }`, StageRepair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			obj, err := decodeObject(tt.in)
			if tt.wantErr != "" {
				var pErr *ParseError
				require.ErrorAs(t, err, &pErr)
				assert.Equal(t, tt.wantErr, pErr.Stage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", obj["name"])
		})
	}
}
