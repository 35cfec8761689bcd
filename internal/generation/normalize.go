package generation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shared coercion helpers for the per-kind normalizers. Raw payloads come
// out of the extractor as any; nothing here assumes field presence or type.

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asArray(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

func stringFromAny(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64, int, bool:
		return strings.TrimSpace(fmt.Sprint(t))
	default:
		return ""
	}
}

// firstField returns the first present key, so normalizers can accept both
// field-name casings the model is known to emit.
func firstField(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func firstString(m map[string]any, keys ...string) string {
	v, ok := firstField(m, keys...)
	if !ok {
		return ""
	}
	return stringFromAny(v)
}

func toStringSlice(v any) []string {
	if v == nil {
		return []string{}
	}
	a, ok := v.([]any)
	if !ok {
		if ss, ok2 := v.([]string); ok2 {
			out := make([]string, 0, len(ss))
			for _, s := range ss {
				if t := strings.TrimSpace(s); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
		return []string{}
	}
	out := make([]string, 0, len(a))
	for _, x := range a {
		if s := stringFromAny(x); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// intValue reports a strictly integer-valued number. Fractional floats and
// non-numeric values do not count; callers drop rather than default.
func intValue(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != math.Trunc(t) {
			return 0, false
		}
		return int(t), true
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func floatFromAny(v any, def float64) float64 {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return def
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return def
		}
		return f
	default:
		return def
	}
}

func coerceDifficulty(v any) string {
	switch strings.ToLower(stringFromAny(v)) {
	case "easy":
		return "easy"
	case "hard":
		return "hard"
	case "medium":
		return "medium"
	default:
		return "medium"
	}
}
