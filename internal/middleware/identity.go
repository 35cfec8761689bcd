package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/platform/requestid"
	"github.com/yungbote/studyforge-backend/internal/repos"
	"github.com/yungbote/studyforge-backend/internal/requestdata"
)

// IdentityMiddleware resolves the request owner forwarded by the
// authenticating gateway. The service itself issues no credentials; it
// trusts the gateway-supplied UUID and provisions a stub user row the first
// time an owner is seen so generated content has a valid foreign key target.
type IdentityMiddleware struct {
	log   *logger.Logger
	users repos.UserRepo
}

func NewIdentityMiddleware(baseLog *logger.Logger, users repos.UserRepo) *IdentityMiddleware {
	return &IdentityMiddleware{
		log:   baseLog.With("middleware", "IdentityMiddleware"),
		users: users,
	}
}

func (im *IdentityMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractOwnerID(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing owner identity"})
			return
		}
		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid owner identity"})
			return
		}

		if err := im.users.EnsureExists(c.Request.Context(), nil, userID); err != nil {
			im.log.Error("owner provisioning failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "unable to resolve request owner"})
			return
		}

		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{
			UserID:    userID,
			RequestID: requestid.New(),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractOwnerID checks the gateway headers first; the query fallback exists
// because EventSource connections cannot set headers.
func extractOwnerID(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
		return h
	}
	if q := strings.TrimSpace(c.Query("user_id")); q != "" {
		return q
	}
	return ""
}
