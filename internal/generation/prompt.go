package generation

import (
	"fmt"
	"strings"
)

// Prompt builders are pure: parameters in, prompt text out. Each prompt
// states the task, encodes every parameter value, and embeds a literal
// example of the exact target schema. Parameter validation happens in the
// calling service before any of these run.

const chatSystemPreamble = `You are a patient study tutor. Answer the learner's message directly and
concretely. Use plain prose; do not wrap the answer in JSON or code fences.`

func BuildChatPrompt(p ChatParams) string {
	var b strings.Builder
	b.WriteString(chatSystemPreamble)
	b.WriteString("\n\n")
	if len(p.History) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range p.History {
			role := strings.TrimSpace(turn.Role)
			if role == "" {
				role = "user"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, strings.TrimSpace(turn.Content))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Learner's message: %s", strings.TrimSpace(p.Message))
	return b.String()
}

const summarySchemaExample = `{
  "summary": "Photosynthesis converts light energy into chemical energy stored in glucose.",
  "keyPoints": [
    "Occurs in chloroplasts",
    "Requires light, water and carbon dioxide"
  ]
}`

func BuildSummaryPrompt(p SummaryParams) string {
	var b strings.Builder
	b.WriteString("Summarize the study material below into a short summary plus key points.\n")
	if p.Focus != "" {
		fmt.Fprintf(&b, "Focus the summary on: %s.\n", p.Focus)
	}
	b.WriteString("\nRespond with ONLY a JSON object in exactly this shape:\n")
	b.WriteString(summarySchemaExample)
	b.WriteString("\n\nMaterial:\n")
	b.WriteString(strings.TrimSpace(p.Text))
	return b.String()
}

const flashcardSchemaExample = `[
  {
    "question": "What does photosynthesis convert?",
    "answer": "Light energy into chemical energy"
  }
]`

func BuildFlashcardPrompt(p FlashcardParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create exactly %d study flashcards about %q.\n", p.Count, p.Topic)
	if p.Notes != "" {
		b.WriteString("Base the cards on these notes:\n")
		b.WriteString(strings.TrimSpace(p.Notes))
		b.WriteString("\n")
	}
	b.WriteString("\nEach card needs a non-empty question and a non-empty answer.\n")
	b.WriteString("Respond with ONLY a JSON array in exactly this shape:\n")
	b.WriteString(flashcardSchemaExample)
	return b.String()
}

const quizSchemaExample = `[
  {
    "question": "Which organelle hosts photosynthesis?",
    "options": ["Chloroplast", "Mitochondrion", "Nucleus", "Ribosome"],
    "correctAnswer": 0,
    "explanation": "Chloroplasts contain the chlorophyll that captures light."
  }
]`

func BuildQuizPrompt(p QuizParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a %s-difficulty quiz of exactly %d questions about %q.\n",
		p.Difficulty, p.Count, p.Topic)
	b.WriteString("Every question needs exactly 4 answer options and one correct answer.\n")
	b.WriteString("\"correctAnswer\" is the zero-based integer index into \"options\".\n")
	b.WriteString("Respond with ONLY a JSON array in exactly this shape:\n")
	b.WriteString(quizSchemaExample)
	return b.String()
}

const milestoneSchemaExample = `[
  {
    "id": "1",
    "title": "Learn the fundamentals",
    "description": "Cover the core vocabulary and mental models",
    "difficulty": "easy",
    "estimatedHours": 8,
    "completed": false
  }
]`

func BuildRoadmapPrompt(p RoadmapParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a learning roadmap for %q spanning %d weeks at about %d hours per week.\n",
		p.Topic, p.DurationWeeks, p.HoursPerWeek)
	if p.Summary != "" {
		fmt.Fprintf(&b, "Learner background: %s\n", p.Summary)
	}
	b.WriteString("Order the milestones from first to last.\n")
	b.WriteString("\"difficulty\" must be one of \"easy\", \"medium\" or \"hard\".\n")
	b.WriteString("Respond with ONLY a JSON array of milestones in exactly this shape:\n")
	b.WriteString(milestoneSchemaExample)
	return b.String()
}

const detailedRoadmapSchemaExample = `{
  "title": "Mastering the topic",
  "userSummary": "Tailored plan based on the learner's background",
  "stages": [
    {
      "id": "1",
      "title": "Foundations",
      "description": "Build the base skills",
      "difficulty": "easy",
      "estimatedHours": 20,
      "completed": false,
      "topics": ["Core concept A", "Core concept B"],
      "exercises": ["Drill the basics"],
      "projects": ["Small starter project"],
      "resources": ["An introductory book or course"]
    }
  ],
  "finalProject": "A capstone that exercises every stage",
  "resourceList": ["One cross-stage reference"]
}`

func BuildDetailedRoadmapPrompt(p RoadmapParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed, staged learning roadmap for %q spanning %d weeks at about %d hours per week.\n",
		p.Topic, p.DurationWeeks, p.HoursPerWeek)
	if p.Summary != "" {
		fmt.Fprintf(&b, "Learner background: %s\n", p.Summary)
	}
	b.WriteString("Each stage carries its own difficulty, estimated hours, topics, exercises, projects and resources.\n")
	b.WriteString("\"difficulty\" must be one of \"easy\", \"medium\" or \"hard\".\n")
	b.WriteString("Respond with ONLY a JSON object in exactly this shape:\n")
	b.WriteString(detailedRoadmapSchemaExample)
	return b.String()
}

const courseSchemaExample = `{
  "title": "Course title",
  "description": "What the course covers and who it is for",
  "level": "beginner",
  "language": "English",
  "tags": ["tag-one", "tag-two"],
  "modules": [
    {
      "title": "Module title",
      "summary": "What this module teaches",
      "keyConcepts": ["Concept A", "Concept B"],
      "topics": ["Concept A", "Concept B"],
      "flashcards": [
        {"question": "A recall question", "answer": "Its answer"}
      ],
      "practiceTasks": ["A concrete exercise"],
      "quizQuestions": [
        {
          "question": "A check-in question",
          "options": ["Right", "Wrong", "Also wrong", "Still wrong"],
          "correctAnswer": 0,
          "explanation": "Why the first option is right"
        }
      ],
      "resources": [
        {"type": "video", "title": "A video to watch", "url": "https://example.com/watch"},
        {"type": "article", "title": "An article to read", "url": "https://example.com/read"}
      ],
      "ideSetup": {
        "recommended": "Visual Studio Code",
        "steps": ["Install the editor", "Install the language toolchain"],
        "extensions": ["Language support extension"]
      }
    }
  ]
}`

func BuildCoursePrompt(p CourseParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Design a complete %s-level course about %q, taught in %s.\n",
		p.Level, p.Topic, p.Language)
	b.WriteString("Split it into 4-8 modules ordered from fundamentals to advanced work.\n")
	b.WriteString("\"level\" must be one of \"beginner\", \"intermediate\" or \"advanced\".\n")
	b.WriteString("Resource \"type\" must be one of \"video\", \"article\" or \"doc\".\n")
	if p.IncludeIDESetup != nil && !*p.IncludeIDESetup {
		b.WriteString("Do not include the optional \"ideSetup\" block.\n")
	} else {
		b.WriteString("Include the optional \"ideSetup\" block only when the subject involves writing code.\n")
	}
	b.WriteString("Respond with ONLY a JSON object in exactly this shape:\n")
	b.WriteString(courseSchemaExample)
	return b.String()
}
