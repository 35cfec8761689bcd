package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/generation"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/repos"
	"github.com/yungbote/studyforge-backend/internal/types"
)

// Store owns the generation-job lifecycle. Begin writes the running row with
// its input snapshot before any completion call goes out, so a crash mid
// pipeline still leaves a diagnosable row. Succeed and Fail finalize the row
// exactly once and mutate the passed job in place so callers keep a coherent
// copy for responses and notifications.
type Store interface {
	Begin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind generation.Kind, params any) (*types.GenerationJob, error)
	Succeed(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, resultID uuid.UUID) error
	Fail(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, cause error) error
}

type store struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.GenerationJobRepo
}

func NewStore(db *gorm.DB, baseLog *logger.Logger, repo repos.GenerationJobRepo) Store {
	return &store{
		db:   db,
		log:  baseLog.With("component", "JobStore"),
		repo: repo,
	}
}

func (s *store) Begin(ctx context.Context, tx *gorm.DB, userID uuid.UUID, kind generation.Kind, params any) (*types.GenerationJob, error) {
	const op = "JobStore.Begin"

	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInternal, op, "job owner missing", nil)
	}
	if !kind.Valid() {
		return nil, generation.NewError(generation.CodeInternal, op,
			fmt.Sprintf("unknown generation kind %q", kind), nil)
	}

	snapshot, err := json.Marshal(params)
	if err != nil {
		return nil, generation.Wrap(generation.CodeInternal, op, err)
	}

	now := time.Now()
	job := &types.GenerationJob{
		ID:        uuid.New(),
		UserID:    userID,
		Kind:      string(kind),
		Status:    StatusRunning,
		Inputs:    datatypes.JSON(snapshot),
		StartedAt: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, tx, job)
	if err != nil {
		return nil, repos.ClassifyWriteError(op, err)
	}
	s.log.Debug("generation job started", "job_id", created.ID, "kind", created.Kind, "user_id", created.UserID)
	return created, nil
}

func (s *store) Succeed(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, resultID uuid.UUID) error {
	const op = "JobStore.Succeed"

	if job == nil {
		return generation.NewError(generation.CodeInternal, op, "nil job", nil)
	}
	if job.Status != StatusRunning {
		return generation.NewError(generation.CodeInternal, op,
			fmt.Sprintf("job %s already finalized as %s", job.ID, job.Status), nil)
	}
	if resultID == uuid.Nil {
		return generation.NewError(generation.CodeInternal, op, "result reference missing", nil)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      StatusDone,
		"result_id":   resultID,
		"finished_at": now,
		"updated_at":  now,
	}
	if err := s.repo.UpdateFields(ctx, tx, job.ID, updates); err != nil {
		return repos.ClassifyWriteError(op, err)
	}
	job.Status = StatusDone
	job.ResultID = &resultID
	job.FinishedAt = &now
	job.UpdatedAt = now
	s.log.Debug("generation job done", "job_id", job.ID, "result_id", resultID)
	return nil
}

func (s *store) Fail(ctx context.Context, tx *gorm.DB, job *types.GenerationJob, cause error) error {
	const op = "JobStore.Fail"

	if job == nil {
		return generation.NewError(generation.CodeInternal, op, "nil job", nil)
	}
	if job.Status != StatusRunning {
		return generation.NewError(generation.CodeInternal, op,
			fmt.Sprintf("job %s already finalized as %s", job.ID, job.Status), nil)
	}

	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	now := time.Now()
	updates := map[string]interface{}{
		"status":      StatusFailed,
		"error":       msg,
		"finished_at": now,
		"updated_at":  now,
	}
	if err := s.repo.UpdateFields(ctx, tx, job.ID, updates); err != nil {
		return repos.ClassifyWriteError(op, err)
	}
	job.Status = StatusFailed
	job.Error = msg
	job.FinishedAt = &now
	job.UpdatedAt = now
	s.log.Debug("generation job failed", "job_id", job.ID, "error", msg)
	return nil
}
