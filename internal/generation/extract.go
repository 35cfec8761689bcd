package generation

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Shape constrains which candidate substring the extractor scans for when a
// direct parse fails. The returned payload is still whatever parsed; callers
// check the shape they need.
type Shape int

const (
	ShapeAny Shape = iota
	ShapeObject
	ShapeArray
)

// Completion models fence payloads inconsistently: sometimes tagged
// (```json), sometimes bare, sometimes mid-prose. Strip every fence token
// wherever it occurs.
var fenceRe = regexp.MustCompile("(?i)```[a-z]*")

func stripFences(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
}

// Extract recovers a JSON payload from free-form completion text.
//
// It strips markdown fences, tries a direct parse, then falls back to the
// greedy candidate substring (first opener to last matching closer) for the
// expected shape. No syntax repair: a candidate with broken JSON inside is a
// hard extraction failure.
func Extract(raw string, want Shape) (any, error) {
	const op = "generation.Extract"

	text := stripFences(raw)
	if text == "" {
		return nil, NewError(CodeExtraction, op, "no structured payload found", nil)
	}

	var direct any
	if err := json.Unmarshal([]byte(text), &direct); err == nil {
		return direct, nil
	}

	candidate, ok := candidateSubstring(text, want)
	if !ok {
		return nil, NewError(CodeExtraction, op, "no structured payload found", nil)
	}
	var parsed any
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return nil, NewError(CodeExtraction, op, "no structured payload found", err)
	}
	return parsed, nil
}

func candidateSubstring(text string, want Shape) (string, bool) {
	switch want {
	case ShapeObject:
		return spanBetween(text, '{', '}')
	case ShapeArray:
		return spanBetween(text, '[', ']')
	default:
		objStart := strings.IndexByte(text, '{')
		arrStart := strings.IndexByte(text, '[')
		switch {
		case objStart == -1 && arrStart == -1:
			return "", false
		case arrStart == -1 || (objStart != -1 && objStart < arrStart):
			return spanBetween(text, '{', '}')
		default:
			return spanBetween(text, '[', ']')
		}
	}
}

func spanBetween(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
