package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyforge-backend/internal/middleware"
	"github.com/yungbote/studyforge-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, identity *middleware.IdentityMiddleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:     cfg.ServiceName,
		CORSOrigins:     cfg.CORSOrigins,
		Identity:        identity,
		GenerateHandler: handlerset.Generate,
		CourseHandler:   handlerset.Course,
		RoadmapHandler:  handlerset.Roadmap,
		JobsHandler:     handlerset.Jobs,
		SSEHandler:      handlerset.SSE,
	})
}
