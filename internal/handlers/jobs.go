package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/services"
)

type JobsHandler struct {
	svc services.JobService
}

func NewJobsHandler(svc services.JobService) *JobsHandler {
	return &JobsHandler{svc: svc}
}

// GET /api/generation-jobs
func (h *JobsHandler) ListJobs(c *gin.Context) {
	jobs, err := h.svc.ListForRequestUser(c.Request.Context(), nil)
	if err != nil {
		RespondGenerationError(c, "generation jobs", err)
		return
	}
	RespondOK(c, gin.H{"jobs": jobs})
}

// GET /api/generation-jobs/:id
func (h *JobsHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_job_id", errors.New("invalid job id"))
		return
	}

	job, err := h.svc.GetByIDForRequestUser(c.Request.Context(), nil, jobID)
	if err != nil {
		RespondGenerationError(c, "a generation job", err)
		return
	}
	RespondOK(c, gin.H{"job": job})
}
