// Package pyjson parses loosely encoded structured fields coming back from
// the upstream sync jobs. Some fields are proper JSON, others are Python
// repr() strings (single quotes, None/True/False), so strings are normalized
// before parsing.
package pyjson

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	noneRe  = regexp.MustCompile(`\bNone\b`)
	trueRe  = regexp.MustCompile(`\bTrue\b`)
	falseRe = regexp.MustCompile(`\bFalse\b`)
)

// Looks reports whether s looks like an encoded array or object.
func Looks(s string) bool {
	t := strings.TrimSpace(s)
	return strings.HasPrefix(t, "[") || strings.HasPrefix(t, "{")
}

// Normalize rewrites Python literal tokens into strict JSON. Running it on
// already valid JSON output is a no-op.
func Normalize(s string) string {
	out := strings.ReplaceAll(s, "'", `"`)
	out = noneRe.ReplaceAllString(out, "null")
	out = trueRe.ReplaceAllString(out, "true")
	out = falseRe.ReplaceAllString(out, "false")
	return out
}

func needsNormalize(s string) bool {
	return strings.Contains(s, "'") ||
		strings.Contains(s, "None") ||
		strings.Contains(s, "True") ||
		strings.Contains(s, "False")
}

// Parse decodes s into a dynamic value (map[string]any, []any, string,
// float64, bool or nil), normalizing Python literals first when needed.
func Parse(s string) (any, error) {
	raw := s
	if needsNormalize(raw) {
		raw = Normalize(raw)
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
