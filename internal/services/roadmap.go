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

// RoadmapService reads persisted roadmaps (simple and detailed share one
// table) for the request owner.
type RoadmapService interface {
	GetUserRoadmaps(ctx context.Context, tx *gorm.DB) ([]*types.Roadmap, error)
	GetRoadmapForUser(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error)
}

type roadmapService struct {
	db          *gorm.DB
	log         *logger.Logger
	roadmapRepo repos.RoadmapRepo
}

func NewRoadmapService(db *gorm.DB, baseLog *logger.Logger, roadmapRepo repos.RoadmapRepo) RoadmapService {
	return &roadmapService{
		db:          db,
		log:         baseLog.With("service", "RoadmapService"),
		roadmapRepo: roadmapRepo,
	}
}

func (rs *roadmapService) GetUserRoadmaps(ctx context.Context, tx *gorm.DB) ([]*types.Roadmap, error) {
	const op = "RoadmapService.GetUserRoadmaps"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	roadmaps, err := rs.roadmapRepo.ListByUser(ctx, tx, userID)
	if err != nil {
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	return roadmaps, nil
}

func (rs *roadmapService) GetRoadmapForUser(ctx context.Context, tx *gorm.DB, roadmapID uuid.UUID) (*types.Roadmap, error) {
	const op = "RoadmapService.GetRoadmapForUser"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	roadmap, err := rs.roadmapRepo.GetByID(ctx, tx, roadmapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, generation.NewError(generation.CodeNotFound, op, "roadmap not found", err)
		}
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	if roadmap.UserID != userID {
		return nil, generation.NewError(generation.CodeNotFound, op, "roadmap not found", nil)
	}
	return roadmap, nil
}
