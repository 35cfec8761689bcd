package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/services"
)

type RoadmapHandler struct {
	svc services.RoadmapService
}

func NewRoadmapHandler(svc services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

// GET /api/roadmaps
func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	roadmaps, err := h.svc.GetUserRoadmaps(c.Request.Context(), nil)
	if err != nil {
		RespondGenerationError(c, "roadmaps", err)
		return
	}
	RespondOK(c, gin.H{"roadmaps": roadmaps})
}

// GET /api/roadmaps/:id
func (h *RoadmapHandler) GetRoadmapByID(c *gin.Context) {
	roadmapID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_roadmap_id", errors.New("invalid roadmap id"))
		return
	}

	roadmap, err := h.svc.GetRoadmapForUser(c.Request.Context(), nil, roadmapID)
	if err != nil {
		RespondGenerationError(c, "a roadmap", err)
		return
	}
	RespondOK(c, gin.H{"roadmap": roadmap})
}
