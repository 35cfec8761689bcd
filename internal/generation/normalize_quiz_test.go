package generation

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNormalizeQuizAcceptsBothAnswerCasings(t *testing.T) {
	payload := []any{
		map[string]any{
			"question":       "Pick one",
			"options":        []any{"a", "b", "c", "d"},
			"correct_answer": float64(2),
		},
	}

	got, err := NormalizeQuizQuestions(payload)
	if err != nil {
		t.Fatalf("NormalizeQuizQuestions returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got)=%d, want 1", len(got))
	}
	if got[0].CorrectAnswer != 2 {
		t.Fatalf("CorrectAnswer=%d, want 2", got[0].CorrectAnswer)
	}
}

func TestNormalizeQuizDropsInvalidItems(t *testing.T) {
	payload := []any{
		map[string]any{ // survives
			"question":      "Valid",
			"options":       []any{"a", "b"},
			"correctAnswer": float64(1),
			"explanation":   "b is right",
		},
		map[string]any{ // too few options
			"question":      "One option",
			"options":       []any{"only"},
			"correctAnswer": float64(0),
		},
		map[string]any{ // out of range
			"question":      "Out of range",
			"options":       []any{"a", "b"},
			"correctAnswer": float64(2),
		},
		map[string]any{ // negative
			"question":      "Negative",
			"options":       []any{"a", "b"},
			"correctAnswer": float64(-1),
		},
		map[string]any{ // fractional index is not an integer answer
			"question":      "Fractional",
			"options":       []any{"a", "b"},
			"correctAnswer": 1.5,
		},
		map[string]any{ // answer missing entirely
			"question": "No answer",
			"options":  []any{"a", "b"},
		},
		map[string]any{ // question missing
			"options":       []any{"a", "b"},
			"correctAnswer": float64(0),
		},
	}

	got, err := NormalizeQuizQuestions(payload)
	if err != nil {
		t.Fatalf("NormalizeQuizQuestions returned error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len(got)=%d, want 1 survivor", len(got))
	}
	for _, q := range got {
		if len(q.Options) < 2 {
			t.Fatalf("survivor has %d options, want >=2", len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Fatalf("survivor answer %d out of range [0,%d)", q.CorrectAnswer, len(q.Options))
		}
	}
}

func TestNormalizeQuizEmptyAfterDrops(t *testing.T) {
	payload := []any{
		map[string]any{"question": "Bad", "options": []any{"only"}, "correctAnswer": float64(0)},
	}

	_, err := NormalizeQuizQuestions(payload)
	if err == nil {
		t.Fatal("NormalizeQuizQuestions succeeded, want validation error")
	}
	if !IsCode(err, CodeValidation) {
		t.Fatalf("CodeOf(err)=%v, want %v", CodeOf(err), CodeValidation)
	}
}

func TestNormalizeQuizRejectsNonArray(t *testing.T) {
	_, err := NormalizeQuizQuestions(map[string]any{"question": "not an array"})
	if err == nil {
		t.Fatal("NormalizeQuizQuestions succeeded, want validation error")
	}
	if !IsCode(err, CodeValidation) {
		t.Fatalf("CodeOf(err)=%v, want %v", CodeOf(err), CodeValidation)
	}
}

func TestNormalizeQuizIdempotent(t *testing.T) {
	payload := []any{
		map[string]any{
			"question":      "Pick",
			"options":       []any{"a", "b", "c"},
			"correctAnswer": float64(1),
			"explanation":   "because",
		},
	}

	first, err := NormalizeQuizQuestions(payload)
	if err != nil {
		t.Fatalf("first pass error: %v", err)
	}
	raw, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var roundTripped any
	if err := json.Unmarshal(raw, &roundTripped); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	second, err := NormalizeQuizQuestions(roundTripped)
	if err != nil {
		t.Fatalf("second pass error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("renormalization changed payload: first=%+v second=%+v", first, second)
	}
}
