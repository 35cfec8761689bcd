package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/studyforge-backend/internal/handlers"
	"github.com/yungbote/studyforge-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	CORSOrigins     []string
	Identity        *middleware.IdentityMiddleware
	GenerateHandler *handlers.GenerateHandler
	CourseHandler   *handlers.CourseHandler
	RoadmapHandler  *handlers.RoadmapHandler
	JobsHandler     *handlers.JobsHandler
	SSEHandler      *handlers.SSEHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-User-ID", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)

	// Everything below requires a resolved owner.
	protected := router.Group("/")
	protected.Use(cfg.Identity.RequireIdentity())

	api := protected.Group("/api")
	{
		// Stateless generation
		gen := api.Group("/generate")
		{
			gen.POST("/chat", cfg.GenerateHandler.Chat)
			gen.POST("/summary", cfg.GenerateHandler.Summary)
			gen.POST("/flashcards", cfg.GenerateHandler.Flashcards)
			gen.POST("/quiz", cfg.GenerateHandler.Quiz)
		}

		// Roadmaps
		api.POST("/roadmaps/generate", cfg.GenerateHandler.Roadmap)
		api.GET("/roadmaps", cfg.RoadmapHandler.ListRoadmaps)
		api.GET("/roadmaps/:id", cfg.RoadmapHandler.GetRoadmapByID)

		// Courses
		api.POST("/courses/generate", cfg.GenerateHandler.Course)
		api.GET("/courses", cfg.CourseHandler.ListCourses)
		api.GET("/courses/:id", cfg.CourseHandler.GetCourseByID)

		// Generation-job audit trail
		api.GET("/generation-jobs", cfg.JobsHandler.ListJobs)
		api.GET("/generation-jobs/:id", cfg.JobsHandler.GetJobByID)
	}

	// SSE
	protected.GET("/sse/stream", cfg.SSEHandler.Stream)

	return router
}
