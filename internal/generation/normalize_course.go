package generation

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeCourseOutline maps an extracted payload into the course shape and
// runs the per-module coverage pass: every surviving module ends up with at
// least one video resource, one article/doc resource, and one quiz question,
// synthesized deterministically when the model omitted them.
//
// IDE setup guidance is attached when the topic classifier flags the subject
// as technical, unless the caller opted out; opting out also strips any
// model-provided setup blocks.
func NormalizeCourseOutline(payload any, topic string, ideOptOut bool) (*CourseOutline, error) {
	const op = "generation.NormalizeCourseOutline"

	m, ok := asObject(payload)
	if !ok {
		return nil, NewError(CodeValidation, op, "expected a course object", nil)
	}

	outline := &CourseOutline{
		Title:       firstString(m, "title"),
		Description: firstString(m, "description"),
		Level:       firstString(m, "level"),
		Language:    firstString(m, "language"),
		Tags:        toStringSlice(m["tags"]),
	}
	if outline.Title == "" {
		outline.Title = strings.TrimSpace(topic)
	}
	if outline.Level == "" {
		outline.Level = "beginner"
	}
	if outline.Language == "" {
		outline.Language = "English"
	}

	rawModules, _ := asArray(m["modules"])
	modules := make([]CourseModule, 0, len(rawModules))
	for _, it := range rawModules {
		mm, ok := asObject(it)
		if !ok {
			continue
		}
		mod, ok := normalizeModule(mm, ideOptOut)
		if !ok {
			continue
		}
		modules = append(modules, mod)
	}
	if len(modules) == 0 {
		return nil, NewError(CodeValidation, op, "no valid modules in payload", nil)
	}
	outline.Modules = modules

	if !ideOptOut && IsTechnicalTopic(topic, outline.Title, strings.Join(outline.Tags, " ")) {
		attachIDESetup(outline)
	}
	return outline, nil
}

func normalizeModule(m map[string]any, ideOptOut bool) (CourseModule, bool) {
	title := firstString(m, "title")
	if title == "" {
		return CourseModule{}, false
	}
	summary := firstString(m, "summary")
	if summary == "" {
		summary = firstString(m, "description")
	}

	keyConcepts := toStringSlice(m["keyConcepts"])
	topics := toStringSlice(m["topics"])
	// Mirror the lists onto each other when only one side is present.
	if len(keyConcepts) == 0 && len(topics) > 0 {
		keyConcepts = topics
	}
	if len(topics) == 0 && len(keyConcepts) > 0 {
		topics = keyConcepts
	}

	rawCards, _ := asArray(m["flashcards"])
	rawQuiz, _ := asArray(m["quizQuestions"])

	mod := CourseModule{
		Title:         title,
		Summary:       summary,
		KeyConcepts:   keyConcepts,
		Topics:        topics,
		Flashcards:    flashcardsFromAny(rawCards),
		PracticeTasks: toStringSlice(m["practiceTasks"]),
		QuizQuestions: quizItemsFromAny(rawQuiz),
		Resources:     resourcesFromAny(m["resources"]),
	}
	if !ideOptOut {
		mod.IDESetup = ideSetupFromAny(m["ideSetup"])
	}
	ensureModuleCoverage(&mod)
	return mod, true
}

func resourcesFromAny(v any) []Resource {
	items, _ := asArray(v)
	out := make([]Resource, 0, len(items))
	for _, it := range items {
		m, ok := asObject(it)
		if !ok {
			continue
		}
		res := Resource{
			Type:  strings.ToLower(firstString(m, "type")),
			Title: firstString(m, "title"),
			URL:   firstString(m, "url"),
		}
		if res.Type == "" && res.Title == "" && res.URL == "" {
			continue
		}
		out = append(out, res)
	}
	return out
}

func ideSetupFromAny(v any) *IDESetup {
	m, ok := asObject(v)
	if !ok {
		return nil
	}
	setup := &IDESetup{
		Recommended: firstString(m, "recommended"),
		Steps:       toStringSlice(m["steps"]),
		Extensions:  toStringSlice(m["extensions"]),
	}
	if setup.Recommended == "" && len(setup.Steps) == 0 && len(setup.Extensions) == 0 {
		return nil
	}
	return setup
}

// ensureModuleCoverage synthesizes the guaranteed minimum content of a
// module: one video resource, one article/doc resource, one quiz question.
func ensureModuleCoverage(mod *CourseModule) {
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
		mod.Resources = append(mod.Resources, Resource{
			Type:  "video",
			Title: fmt.Sprintf("Video: %s", mod.Title),
			URL:   "https://www.youtube.com/results?search_query=" + url.QueryEscape(mod.Title),
		})
	}
	if !hasArticle {
		mod.Resources = append(mod.Resources, Resource{
			Type:  "article",
			Title: fmt.Sprintf("Article: %s", mod.Title),
			URL:   "https://www.google.com/search?q=" + url.QueryEscape(mod.Title),
		})
	}
	if len(mod.QuizQuestions) == 0 {
		mod.QuizQuestions = []QuizQuestion{placeholderQuizQuestion(mod.Title)}
	}
}

func placeholderQuizQuestion(moduleTitle string) QuizQuestion {
	return QuizQuestion{
		Question: fmt.Sprintf("Which topic does the module %q focus on?", moduleTitle),
		Options: []string{
			moduleTitle,
			"An unrelated subject",
			"General trivia",
			"None of the above",
		},
		CorrectAnswer: 0,
		Explanation:   fmt.Sprintf("This module centers on %s.", moduleTitle),
	}
}

// attachIDESetup adds the setup block to the first module when no module
// carries one already.
func attachIDESetup(outline *CourseOutline) {
	for i := range outline.Modules {
		if outline.Modules[i].IDESetup != nil {
			return
		}
	}
	outline.Modules[0].IDESetup = &IDESetup{
		Recommended: "Visual Studio Code",
		Steps: []string{
			"Install Visual Studio Code from https://code.visualstudio.com",
			"Install the language runtime or SDK for this course",
			"Create a dedicated workspace folder for the course exercises",
			"Enable format-on-save and autosave in the editor settings",
		},
		Extensions: []string{
			"Language support extension for the course's primary language",
			"Error Lens",
			"GitLens",
		},
	}
}
