package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/studyforge-backend/internal/jobs"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/services"
	"github.com/yungbote/studyforge-backend/internal/sse"
)

type Services struct {
	Generation services.GenerationService
	Course     services.CourseService
	Roadmap    services.RoadmapService
	Jobs       services.JobService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients, hub *sse.SSEHub) Services {
	log.Info("Wiring services...")

	// With a bus every instance (this one included) delivers through its
	// forwarder, so local emits must not also hit the hub directly.
	var emitter services.SSEEmitter
	if clients.SSEBus != nil {
		emitter = &services.BusEmitter{Bus: clients.SSEBus, Log: log}
	} else {
		emitter = &services.HubEmitter{Hub: hub}
	}
	notifier := services.NewJobNotifier(emitter)

	jobStore := jobs.NewStore(db, log, reposet.GenerationJob)

	return Services{
		Generation: services.NewGenerationService(
			log,
			clients.AI,
			jobStore,
			notifier,
			reposet.Course,
			reposet.CourseModule,
			reposet.Roadmap,
			reposet.RoadmapMilestone,
		),
		Course:  services.NewCourseService(db, log, reposet.Course),
		Roadmap: services.NewRoadmapService(db, log, reposet.Roadmap),
		Jobs:    services.NewJobService(db, log, reposet.GenerationJob),
	}
}
