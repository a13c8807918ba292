package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Parse stages reported by ParseError.
const (
	StageSlice  = "slice"
	StageRepair = "repair"
	StageSchema = "schema"
)

// ParseError reports a completion that could not be coerced into a record.
// It carries diagnostics about the text, never the text itself.
type ParseError struct {
	Stage         string `json:"stage"`
	Message       string `json:"message"`
	TextLength    int    `json:"textLength"`
	HasOpenBrace  bool   `json:"hasOpenBrace"`
	HasCloseBrace bool   `json:"hasCloseBrace"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing completion (%s): %s", e.Stage, e.Message)
}

func newParseError(stage, msg, text string) *ParseError {
	return &ParseError{
		Stage:         stage,
		Message:       msg,
		TextLength:    len(text),
		HasOpenBrace:  strings.Contains(text, "{"),
		HasCloseBrace: strings.Contains(text, "}"),
	}
}

var fenceRe = regexp.MustCompile("```[A-Za-z]*")

// decodeObject recovers a JSON object from completion text: strip fences,
// parse, slice to the outermost braces, parse, repair, parse.
func decodeObject(text string) (map[string]any, error) {
	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))

	if obj, err := unmarshalObject(cleaned); err == nil {
		return obj, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, newParseError(StageSlice, "no JSON object found in completion", text)
	}
	sliced := cleaned[start : end+1]

	if obj, err := unmarshalObject(sliced); err == nil {
		return obj, nil
	}

	obj, err := unmarshalObject(repairJSON(sliced))
	if err != nil {
		return nil, newParseError(StageRepair, err.Error(), text)
	}
	return obj, nil
}

func unmarshalObject(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("completion is not a JSON object")
	}
	return obj, nil
}

// repairJSON fixes the two damage patterns seen from completion services:
// string values broken across raw newlines are joined with a single space,
// and missing commas between adjacent values are inserted. Commas left
// dangling before a closing bracket are removed. Only text outside string
// literals is rewritten.
func repairJSON(s string) string {
	out := make([]byte, 0, len(s)+16)
	inStr, esc := false, false
	lastSig := -1

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
				out = append(out, c)
				lastSig = len(out) - 1
				continue
			case c == '\n' || c == '\r':
				out = bytes.TrimRight(out, " \t")
				for i+1 < len(s) && isJSONSpace(s[i+1]) {
					i++
				}
				out = append(out, ' ')
				continue
			}
			out = append(out, c)
			continue
		}

		switch {
		case isJSONSpace(c):
			out = append(out, c)
			continue
		case c == '}' || c == ']':
			if lastSig >= 0 && out[lastSig] == ',' {
				out = slices.Delete(out, lastSig, lastSig+1)
			}
		case c == '"' || c == '{' || c == '[':
			if lastSig >= 0 && endsValue(out[lastSig]) {
				out = slices.Insert(out, lastSig+1, ',')
			}
			inStr = c == '"'
		}

		out = append(out, c)
		lastSig = len(out) - 1
	}

	return string(out)
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// endsValue reports whether c can be the last byte of a JSON value.
func endsValue(c byte) bool {
	switch {
	case c == '"', c == '}', c == ']':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == 'e', c == 'l': // true, false, null
		return true
	}
	return false
}
