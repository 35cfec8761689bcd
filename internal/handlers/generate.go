package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/services"
)

type GenerateHandler struct {
	svc services.GenerationService
}

func NewGenerateHandler(svc services.GenerationService) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// POST /api/generate/chat
func (h *GenerateHandler) Chat(c *gin.Context) {
	var req struct {
		Message string                `json:"message"`
		History []generation.ChatTurn `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	reply, err := h.svc.GenerateChatReply(c.Request.Context(), generation.ChatParams{
		Message: req.Message,
		History: req.History,
	})
	if err != nil {
		RespondGenerationError(c, "a chat reply", err)
		return
	}
	RespondOK(c, gin.H{"reply": reply})
}

// POST /api/generate/summary
func (h *GenerateHandler) Summary(c *gin.Context) {
	var req struct {
		Text  string `json:"text"`
		Focus string `json:"focus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	summary, err := h.svc.GenerateSummary(c.Request.Context(), generation.SummaryParams{
		Text:  req.Text,
		Focus: req.Focus,
	})
	if err != nil {
		RespondGenerationError(c, "a summary", err)
		return
	}
	RespondOK(c, summary)
}

// POST /api/generate/flashcards
func (h *GenerateHandler) Flashcards(c *gin.Context) {
	var req struct {
		Topic string `json:"topic"`
		Count int    `json:"count"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	cards, err := h.svc.GenerateFlashcards(c.Request.Context(), generation.FlashcardParams{
		Topic: req.Topic,
		Count: req.Count,
		Notes: req.Notes,
	})
	if err != nil {
		RespondGenerationError(c, "flashcards", err)
		return
	}
	RespondOK(c, gin.H{"flashcards": cards})
}

// POST /api/generate/quiz
func (h *GenerateHandler) Quiz(c *gin.Context) {
	var req struct {
		Topic      string `json:"topic"`
		Count      int    `json:"count"`
		Difficulty string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	questions, err := h.svc.GenerateQuiz(c.Request.Context(), generation.QuizParams{
		Topic:      req.Topic,
		Count:      req.Count,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		RespondGenerationError(c, "a quiz", err)
		return
	}
	RespondOK(c, gin.H{"questions": questions})
}

// POST /api/roadmaps/generate
func (h *GenerateHandler) Roadmap(c *gin.Context) {
	var req struct {
		Topic         string `json:"topic"`
		DurationWeeks int    `json:"durationWeeks"`
		HoursPerWeek  int    `json:"hoursPerWeek"`
		Detailed      bool   `json:"detailed"`
		Summary       string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	roadmap, job, err := h.svc.GenerateRoadmap(c.Request.Context(), generation.RoadmapParams{
		Topic:         req.Topic,
		DurationWeeks: req.DurationWeeks,
		HoursPerWeek:  req.HoursPerWeek,
		Detailed:      req.Detailed,
		Summary:       req.Summary,
	})
	if err != nil {
		RespondGenerationError(c, "a roadmap", err)
		return
	}
	RespondOK(c, gin.H{"roadmap": roadmap, "job": job})
}

// POST /api/courses/generate
func (h *GenerateHandler) Course(c *gin.Context) {
	var req struct {
		Topic           string `json:"topic"`
		Level           string `json:"level"`
		Language        string `json:"language"`
		IncludeIDESetup *bool  `json:"includeIDESetup"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}

	course, job, err := h.svc.GenerateCourse(c.Request.Context(), generation.CourseParams{
		Topic:           req.Topic,
		Level:           req.Level,
		Language:        req.Language,
		IncludeIDESetup: req.IncludeIDESetup,
	})
	if err != nil {
		RespondGenerationError(c, "a course", err)
		return
	}
	RespondOK(c, gin.H{"course": course, "job": job})
}
