package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/repos"
	"github.com/yungbote/studyforge-backend/internal/requestdata"
	"github.com/yungbote/studyforge-backend/internal/types"
)

// JobService exposes the generation-job audit trail to the request owner.
type JobService interface {
	GetByIDForRequestUser(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.GenerationJob, error)
	ListForRequestUser(ctx context.Context, tx *gorm.DB) ([]*types.GenerationJob, error)
}

type jobService struct {
	db      *gorm.DB
	log     *logger.Logger
	jobRepo repos.GenerationJobRepo
}

func NewJobService(db *gorm.DB, baseLog *logger.Logger, jobRepo repos.GenerationJobRepo) JobService {
	return &jobService{
		db:      db,
		log:     baseLog.With("service", "JobService"),
		jobRepo: jobRepo,
	}
}

func (js *jobService) GetByIDForRequestUser(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.GenerationJob, error) {
	const op = "JobService.GetByIDForRequestUser"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	job, err := js.jobRepo.GetByID(ctx, tx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, generation.NewError(generation.CodeNotFound, op, "generation job not found", err)
		}
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	if job.UserID != userID {
		return nil, generation.NewError(generation.CodeNotFound, op, "generation job not found", nil)
	}
	return job, nil
}

func (js *jobService) ListForRequestUser(ctx context.Context, tx *gorm.DB) ([]*types.GenerationJob, error) {
	const op = "JobService.ListForRequestUser"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	jobs, err := js.jobRepo.ListByUser(ctx, tx, userID)
	if err != nil {
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	return jobs, nil
}
