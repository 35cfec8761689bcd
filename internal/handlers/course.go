package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/services"
)

type CourseHandler struct {
	svc services.CourseService
}

func NewCourseHandler(svc services.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// GET /api/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.svc.GetUserCourses(c.Request.Context(), nil)
	if err != nil {
		RespondGenerationError(c, "courses", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses})
}

// GET /api/courses/:id
func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", errors.New("invalid course id"))
		return
	}

	course, err := h.svc.GetCourseForUser(c.Request.Context(), nil, courseID)
	if err != nil {
		RespondGenerationError(c, "a course", err)
		return
	}
	RespondOK(c, gin.H{"course": course})
}
