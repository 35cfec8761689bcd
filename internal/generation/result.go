package generation

// Canonical result shapes, one per kind. These are produced only by the
// normalization routines; nothing above the normalizer trusts raw payloads.

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

type Summary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

type RoadmapMilestone struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Difficulty     string  `json:"difficulty"`
	EstimatedHours float64 `json:"estimatedHours"`
	Completed      bool    `json:"completed"`
}

type RoadmapStage struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Difficulty     string   `json:"difficulty"`
	EstimatedHours float64  `json:"estimatedHours"`
	Completed      bool     `json:"completed"`
	Topics         []string `json:"topics"`
	Exercises      []string `json:"exercises"`
	Projects       []string `json:"projects"`
	Resources      []string `json:"resources"`
}

type DetailedRoadmap struct {
	Title        string         `json:"title"`
	UserSummary  string         `json:"userSummary"`
	Stages       []RoadmapStage `json:"stages"`
	FinalProject string         `json:"finalProject"`
	ResourceList []string       `json:"resourceList"`
}

// Resource types the coverage pass recognizes: "video" and "article"/"doc".
type Resource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type IDESetup struct {
	Recommended string   `json:"recommended"`
	Steps       []string `json:"steps"`
	Extensions  []string `json:"extensions"`
}

type CourseModule struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	KeyConcepts   []string       `json:"keyConcepts"`
	Topics        []string       `json:"topics"`
	Flashcards    []Flashcard    `json:"flashcards"`
	PracticeTasks []string       `json:"practiceTasks"`
	QuizQuestions []QuizQuestion `json:"quizQuestions"`
	Resources     []Resource     `json:"resources"`
	IDESetup      *IDESetup      `json:"ideSetup,omitempty"`
}

type CourseOutline struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Level       string         `json:"level"`
	Language    string         `json:"language"`
	Tags        []string       `json:"tags"`
	Modules     []CourseModule `json:"modules"`
}
