package app

import (
	"github.com/yungbote/studyforge-backend/internal/handlers"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/sse"
)

type Handlers struct {
	Generate *handlers.GenerateHandler
	Course   *handlers.CourseHandler
	Roadmap  *handlers.RoadmapHandler
	Jobs     *handlers.JobsHandler
	SSE      *handlers.SSEHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, hub *sse.SSEHub) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Generate: handlers.NewGenerateHandler(serviceset.Generation),
		Course:   handlers.NewCourseHandler(serviceset.Course),
		Roadmap:  handlers.NewRoadmapHandler(serviceset.Roadmap),
		Jobs:     handlers.NewJobsHandler(serviceset.Jobs),
		SSE:      handlers.NewSSEHandler(hub),
	}
}
