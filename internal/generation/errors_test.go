package generation

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapPreservesExistingCode(t *testing.T) {
	inner := NewError(CodeExtraction, "generation.Extract", "no structured payload found", nil)
	wrapped := Wrap(CodePersistence, "CourseRepo.Create", fmt.Errorf("pipeline: %w", inner))

	if !IsCode(wrapped, CodeExtraction) {
		t.Fatalf("CodeOf(wrapped)=%v, want original %v", CodeOf(wrapped), CodeExtraction)
	}
}

func TestWrapTagsPlainErrors(t *testing.T) {
	err := Wrap(CodeProvider, "OpenAIClient.Complete", errors.New("boom"))

	if !IsCode(err, CodeProvider) {
		t.Fatalf("CodeOf(err)=%v, want %v", CodeOf(err), CodeProvider)
	}
	var pipeErr *Error
	if !errors.As(err, &pipeErr) {
		t.Fatal("wrapped error is not a *Error")
	}
	if pipeErr.Message != "boom" {
		t.Fatalf("Message=%q, want boom", pipeErr.Message)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeProvider, "op", nil); err != nil {
		t.Fatalf("Wrap(nil)=%v, want nil", err)
	}
}

func TestMessageOf(t *testing.T) {
	tagged := NewError(CodeValidation, "op", "no valid flashcards in payload", nil)
	if got := MessageOf(tagged); got != "no valid flashcards in payload" {
		t.Fatalf("MessageOf(tagged)=%q", got)
	}
	plain := errors.New("plain failure")
	if got := MessageOf(plain); got != "plain failure" {
		t.Fatalf("MessageOf(plain)=%q", got)
	}
	if got := MessageOf(nil); got != "" {
		t.Fatalf("MessageOf(nil)=%q, want empty", got)
	}
}

func TestCodeOfUntagged(t *testing.T) {
	if code := CodeOf(errors.New("x")); code != "" {
		t.Fatalf("CodeOf(plain)=%q, want empty", code)
	}
}
