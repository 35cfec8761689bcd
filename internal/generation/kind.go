package generation

// Kind enumerates the content types the pipeline produces.
type Kind string

const (
	KindChatReply       Kind = "chat_reply"
	KindSummary         Kind = "summary"
	KindFlashcards      Kind = "flashcards"
	KindQuiz            Kind = "quiz"
	KindRoadmap         Kind = "roadmap"
	KindDetailedRoadmap Kind = "detailed_roadmap"
	KindCourseOutline   Kind = "course_outline"
)

func (k Kind) Valid() bool {
	switch k {
	case KindChatReply, KindSummary, KindFlashcards, KindQuiz,
		KindRoadmap, KindDetailedRoadmap, KindCourseOutline:
		return true
	default:
		return false
	}
}

// Persisted reports whether results of this kind are written behind a
// generation-job record. The lighter kinds return their payload directly.
func (k Kind) Persisted() bool {
	switch k {
	case KindRoadmap, KindDetailedRoadmap, KindCourseOutline:
		return true
	default:
		return false
	}
}

// ChatTurn is one prior exchange supplied as conversation context.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatParams struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

type SummaryParams struct {
	Text  string `json:"text"`
	Focus string `json:"focus,omitempty"`
}

type FlashcardParams struct {
	Topic string `json:"topic"`
	Count int    `json:"count,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type QuizParams struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type RoadmapParams struct {
	Topic         string `json:"topic"`
	DurationWeeks int    `json:"durationWeeks"`
	HoursPerWeek  int    `json:"hoursPerWeek,omitempty"`
	Detailed      bool   `json:"detailed,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

type CourseParams struct {
	Topic    string `json:"topic"`
	Level    string `json:"level,omitempty"`
	Language string `json:"language,omitempty"`
	// IncludeIDESetup overrides the topic classifier: false opts out of IDE
	// guidance entirely, true keeps it eligible, nil defers to the classifier.
	IncludeIDESetup *bool `json:"includeIDESetup,omitempty"`
}
