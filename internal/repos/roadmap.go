package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/types"
)

type RoadmapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error)
	GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Roadmap, error)
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	repoLog := baseLog.With("repo", "RoadmapRepo")
	return &roadmapRepo{db: db, log: repoLog}
}

func (r *roadmapRepo) Create(ctx context.Context, tx *gorm.DB, roadmap *types.Roadmap) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(roadmap).Error; err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (r *roadmapRepo) GetByID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var roadmap types.Roadmap
	if err := transaction.WithContext(ctx).
		Preload("Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", roadmapID).
		First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *roadmapRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Roadmap
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
