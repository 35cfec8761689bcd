package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/types"
)

type CourseModuleRepo interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, modules []*types.CourseModule) ([]*types.CourseModule, error)
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.CourseModule, error)
}

type courseModuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseModuleRepo(db *gorm.DB, baseLog *logger.Logger) CourseModuleRepo {
	repoLog := baseLog.With("repo", "CourseModuleRepo")
	return &courseModuleRepo{db: db, log: repoLog}
}

func (r *courseModuleRepo) CreateBatch(ctx context.Context, tx *gorm.DB, modules []*types.CourseModule) ([]*types.CourseModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(modules) == 0 {
		return []*types.CourseModule{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *courseModuleRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) ([]*types.CourseModule, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CourseModule
	if err := transaction.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
