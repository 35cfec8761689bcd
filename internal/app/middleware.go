package app

import (
	"github.com/yungbote/studyforge-backend/internal/middleware"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
)

func wireMiddleware(log *logger.Logger, reposet Repos) *middleware.IdentityMiddleware {
	log.Info("Wiring middleware...")
	return middleware.NewIdentityMiddleware(log, reposet.User)
}
