package generation

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func minimalCoursePayload(moduleTitles ...string) map[string]any {
	modules := make([]any, 0, len(moduleTitles))
	for _, title := range moduleTitles {
		modules = append(modules, map[string]any{"title": title})
	}
	return map[string]any{
		"title":   "Test Course",
		"modules": modules,
	}
}

func TestCourseModuleCoverageSynthesis(t *testing.T) {
	got, err := NormalizeCourseOutline(minimalCoursePayload("Bare Module"), "watercolor painting", false)
	if err != nil {
		t.Fatalf("NormalizeCourseOutline returned error: %v", err)
	}

	for _, mod := range got.Modules {
		hasVideo, hasArticle := false, false
		for _, res := range mod.Resources {
			switch res.Type {
			case "video":
				hasVideo = true
			case "article", "doc", "docs", "documentation":
				hasArticle = true
			}
		}
		if !hasVideo {
			t.Fatalf("module %q has no video resource", mod.Title)
		}
		if !hasArticle {
			t.Fatalf("module %q has no article resource", mod.Title)
		}
		if len(mod.QuizQuestions) == 0 {
			t.Fatalf("module %q has no quiz questions", mod.Title)
		}
	}

	video := got.Modules[0].Resources[0]
	if video.Type != "video" {
		t.Fatalf("first synthesized resource type=%q, want video", video.Type)
	}
	if !strings.Contains(video.URL, "youtube.com/results?search_query=") {
		t.Fatalf("video URL=%q, want a deterministic search URL", video.URL)
	}
	if !strings.Contains(video.URL, "Bare+Module") {
		t.Fatalf("video URL=%q, want module title encoded in query", video.URL)
	}

	quiz := got.Modules[0].QuizQuestions[0]
	if !strings.Contains(quiz.Question, "Bare Module") {
		t.Fatalf("placeholder question=%q, want module title referenced", quiz.Question)
	}
	if len(quiz.Options) < 2 || quiz.CorrectAnswer < 0 || quiz.CorrectAnswer >= len(quiz.Options) {
		t.Fatalf("placeholder question violates quiz invariants: %+v", quiz)
	}
}

func TestCourseCoverageKeepsProvidedResources(t *testing.T) {
	payload := map[string]any{
		"title": "Course",
		"modules": []any{
			map[string]any{
				"title": "Module",
				"resources": []any{
					map[string]any{"type": "Video", "title": "Watch", "url": "https://v.example"},
					map[string]any{"type": "doc", "title": "Read", "url": "https://d.example"},
				},
				"quizQuestions": []any{
					map[string]any{"question": "q", "options": []any{"a", "b"}, "correctAnswer": float64(0)},
				},
			},
		},
	}

	got, err := NormalizeCourseOutline(payload, "history", false)
	if err != nil {
		t.Fatalf("NormalizeCourseOutline returned error: %v", err)
	}
	mod := got.Modules[0]
	if len(mod.Resources) != 2 {
		t.Fatalf("len(resources)=%d, want 2 (no synthesis needed)", len(mod.Resources))
	}
	if mod.Resources[0].Type != "video" {
		t.Fatalf("resource type=%q, want lowercased video", mod.Resources[0].Type)
	}
	if len(mod.QuizQuestions) != 1 {
		t.Fatalf("len(quizQuestions)=%d, want 1 provided question kept", len(mod.QuizQuestions))
	}
}

func TestCourseKeyConceptsTopicsMirroring(t *testing.T) {
	payload := map[string]any{
		"title": "Course",
		"modules": []any{
			map[string]any{"title": "A", "topics": []any{"t1", "t2"}},
			map[string]any{"title": "B", "keyConcepts": []any{"k1"}},
		},
	}

	got, err := NormalizeCourseOutline(payload, "history", false)
	if err != nil {
		t.Fatalf("NormalizeCourseOutline returned error: %v", err)
	}
	if !reflect.DeepEqual(got.Modules[0].KeyConcepts, []string{"t1", "t2"}) {
		t.Fatalf("module A keyConcepts=%v, want mirrored topics", got.Modules[0].KeyConcepts)
	}
	if !reflect.DeepEqual(got.Modules[1].Topics, []string{"k1"}) {
		t.Fatalf("module B topics=%v, want mirrored keyConcepts", got.Modules[1].Topics)
	}
}

func TestCourseSummaryDefaultsFromDescription(t *testing.T) {
	payload := map[string]any{
		"title": "Course",
		"modules": []any{
			map[string]any{"title": "A", "description": "desc only"},
		},
	}

	got, err := NormalizeCourseOutline(payload, "history", false)
	if err != nil {
		t.Fatalf("NormalizeCourseOutline returned error: %v", err)
	}
	if got.Modules[0].Summary != "desc only" {
		t.Fatalf("summary=%q, want defaulted from description", got.Modules[0].Summary)
	}
}

func TestCourseIDESetupAttachment(t *testing.T) {
	cases := []struct {
		name   string
		topic  string
		optOut bool
		want   bool
	}{
		{name: "technical_topic_attaches", topic: "Python programming", optOut: false, want: true},
		{name: "non_technical_skips", topic: "watercolor painting", optOut: false, want: false},
		{name: "opt_out_wins", topic: "Python programming", optOut: true, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeCourseOutline(minimalCoursePayload("M1", "M2"), tc.topic, tc.optOut)
			if err != nil {
				t.Fatalf("NormalizeCourseOutline returned error: %v", err)
			}
			attached := false
			for _, mod := range got.Modules {
				if mod.IDESetup != nil {
					attached = true
				}
			}
			if attached != tc.want {
				t.Fatalf("ide setup attached=%v, want %v", attached, tc.want)
			}
		})
	}
}

func TestCourseIDESetupOptOutStripsProvided(t *testing.T) {
	payload := map[string]any{
		"title": "Course",
		"modules": []any{
			map[string]any{
				"title":    "M1",
				"ideSetup": map[string]any{"recommended": "Vim", "steps": []any{"install"}},
			},
		},
	}

	got, err := NormalizeCourseOutline(payload, "Python programming", true)
	if err != nil {
		t.Fatalf("NormalizeCourseOutline returned error: %v", err)
	}
	if got.Modules[0].IDESetup != nil {
		t.Fatal("ide setup present after opt-out, want stripped")
	}
}

func TestCourseWithoutModulesFails(t *testing.T) {
	cases := []struct {
		name    string
		payload any
	}{
		{name: "no_modules_key", payload: map[string]any{"title": "Course"}},
		{name: "untitled_modules", payload: map[string]any{"modules": []any{map[string]any{"summary": "s"}}}},
		{name: "not_an_object", payload: []any{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NormalizeCourseOutline(tc.payload, "history", false)
			if err == nil {
				t.Fatal("NormalizeCourseOutline succeeded, want validation error")
			}
			if !IsCode(err, CodeValidation) {
				t.Fatalf("CodeOf(err)=%v, want %v", CodeOf(err), CodeValidation)
			}
		})
	}
}

func TestCourseNormalizeIdempotent(t *testing.T) {
	payload := map[string]any{
		"title": "Go from scratch",
		"tags":  []any{"golang"},
		"modules": []any{
			map[string]any{
				"title":       "Basics",
				"description": "syntax and tooling",
				"topics":      []any{"syntax"},
			},
			map[string]any{
				"title": "Concurrency",
			},
		},
	}

	first, err := NormalizeCourseOutline(payload, "golang", false)
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
	second, err := NormalizeCourseOutline(roundTripped, "golang", false)
	if err != nil {
		t.Fatalf("second pass error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("renormalization changed payload:\nfirst=%+v\nsecond=%+v", first, second)
	}
}
