package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/types"
)

type RoadmapMilestoneRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, milestones []*types.RoadmapMilestone) ([]*types.RoadmapMilestone, error)
	GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapMilestone, error)
}

type roadmapMilestoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapMilestoneRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapMilestoneRepo {
	repoLog := baseLog.With("repo", "RoadmapMilestoneRepo")
	return &roadmapMilestoneRepo{db: db, log: repoLog}
}

func (r *roadmapMilestoneRepo) CreateBatch(ctx context.Context, tx *gorm.DB, milestones []*types.RoadmapMilestone) ([]*types.RoadmapMilestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(milestones) == 0 {
		return []*types.RoadmapMilestone{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *roadmapMilestoneRepo) GetByRoadmapID(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) ([]*types.RoadmapMilestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.RoadmapMilestone
	if err := transaction.WithContext(ctx).
		Where("roadmap_id = ?", roadmapID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
