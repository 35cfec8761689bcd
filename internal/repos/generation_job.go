package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/types"
)

type GenerationJobRepo interface {
	Create(ctx context.Context, tx *gorm.DB, job *types.GenerationJob) (*types.GenerationJob, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, updates map[string]interface{}) error
	GetByID(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.GenerationJob, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GenerationJob, error)
}

type generationJobRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGenerationJobRepo(db *gorm.DB, baseLog *logger.Logger) GenerationJobRepo {
	repoLog := baseLog.With("repo", "GenerationJobRepo")
	return &generationJobRepo{db: db, log: repoLog}
}

func (r *generationJobRepo) Create(ctx context.Context, tx *gorm.DB, job *types.GenerationJob) (*types.GenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *generationJobRepo) UpdateFields(ctx context.Context, tx *gorm.DB, jobID uuid.UUID, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if jobID == uuid.Nil {
		return nil
	}
	if updates == nil {
		updates = map[string]interface{}{}
	}
	if _, ok := updates["updated_at"]; !ok {
		updates["updated_at"] = time.Now()
	}
	return transaction.WithContext(ctx).
		Model(&types.GenerationJob{}).
		Where("id = ?", jobID).
		Updates(updates).Error
}

func (r *generationJobRepo) GetByID(ctx context.Context, tx *gorm.DB, jobID uuid.UUID) (*types.GenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var job types.GenerationJob
	if err := transaction.WithContext(ctx).
		Where("id = ?", jobID).
		First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *generationJobRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.GenerationJob, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.GenerationJob
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
