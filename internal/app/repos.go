package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/repos"
)

type Repos struct {
	User             repos.UserRepo
	Course           repos.CourseRepo
	CourseModule     repos.CourseModuleRepo
	Roadmap          repos.RoadmapRepo
	RoadmapMilestone repos.RoadmapMilestoneRepo
	GenerationJob    repos.GenerationJobRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:             repos.NewUserRepo(db, log),
		Course:           repos.NewCourseRepo(db, log),
		CourseModule:     repos.NewCourseModuleRepo(db, log),
		Roadmap:          repos.NewRoadmapRepo(db, log),
		RoadmapMilestone: repos.NewRoadmapMilestoneRepo(db, log),
		GenerationJob:    repos.NewGenerationJobRepo(db, log),
	}
}
