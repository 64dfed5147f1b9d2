package events

import (
	"math"
	"strconv"
)

// Number resolves a numeric payload field, tolerating the server sending it
// as a JSON number or as a numeric string. Anything that does not resolve to
// a finite number yields the fallback.
func Number(data map[string]any, key string, fallback float64) float64 {
	if n, ok := NumberOK(data, key); ok {
		return n
	}
	return fallback
}

// NumberOK reports whether the field is present and resolves to a finite
// number. A supplied zero counts as supplied.
func NumberOK(data map[string]any, key string) (float64, bool) {
	if data == nil {
		return 0, false
	}
	raw, ok := data[key]
	if !ok {
		return 0, false
	}
	return coerceNumber(raw)
}

func coerceNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String resolves a string payload field, falling back when the field is
// missing, null, or not a string.
func String(data map[string]any, key, fallback string) string {
	if s, ok := StringOK(data, key); ok {
		return s
	}
	return fallback
}

// StringOK reports whether the field is present as a non-empty string.
func StringOK(data map[string]any, key string) (string, bool) {
	if data == nil {
		return "", false
	}
	s, ok := data[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// Bool resolves a boolean payload field; anything other than a JSON true is
// false.
func Bool(data map[string]any, key string) bool {
	if data == nil {
		return false
	}
	b, _ := data[key].(bool)
	return b
}

// StringSlice resolves an array field to its non-empty string entries.
// The second return distinguishes "field absent or not an array" from a
// present array, which room merging relies on.
func StringSlice(data map[string]any, key string) ([]string, bool) {
	if data == nil {
		return nil, false
	}
	raw, ok := data[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

// Map resolves a nested object field.
func Map(data map[string]any, key string) (map[string]any, bool) {
	if data == nil {
		return nil, false
	}
	m, ok := data[key].(map[string]any)
	return m, ok
}
