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

// CourseService reads persisted course outlines for the request owner.
// Ownership checks happen here, not in the repos: a course that exists but
// belongs to someone else reads the same as one that does not exist.
type CourseService interface {
	GetUserCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetCourseForUser(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (*types.Course, error)
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCourseService(db *gorm.DB, baseLog *logger.Logger, courseRepo repos.CourseRepo) CourseService {
	return &courseService{
		db:         db,
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
	}
}

func (cs *courseService) GetUserCourses(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	const op = "CourseService.GetUserCourses"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	courses, err := cs.courseRepo.ListByUser(ctx, tx, userID)
	if err != nil {
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	return courses, nil
}

func (cs *courseService) GetCourseForUser(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (*types.Course, error) {
	const op = "CourseService.GetCourseForUser"

	userID := requestdata.UserIDFrom(ctx)
	if userID == uuid.Nil {
		return nil, generation.NewError(generation.CodeInvalidArgument, op, "no request owner resolved", nil)
	}

	course, err := cs.courseRepo.GetByID(ctx, tx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, generation.NewError(generation.CodeNotFound, op, "course not found", err)
		}
		return nil, generation.Wrap(generation.CodePersistence, op, err)
	}
	if course.UserID != userID {
		return nil, generation.NewError(generation.CodeNotFound, op, "course not found", nil)
	}
	return course, nil
}
