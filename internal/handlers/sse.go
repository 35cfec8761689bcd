package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/requestdata"
	"github.com/yungbote/studyforge-backend/internal/sse"
)

type SSEHandler struct {
	hub *sse.SSEHub
}

func NewSSEHandler(hub *sse.SSEHub) *SSEHandler {
	return &SSEHandler{hub: hub}
}

// GET /sse/stream
//
// Subscribes the connection to the owner's channel and streams job lifecycle
// events until the client disconnects.
func (h *SSEHandler) Stream(c *gin.Context) {
	userID := requestdata.UserIDFrom(c.Request.Context())
	if userID == uuid.Nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("no request owner resolved"))
		return
	}

	client := h.hub.NewSSEClient(userID)
	h.hub.AddChannel(client, userID.String())
	defer h.hub.CloseClient(client)

	h.hub.ServeHTTP(c.Writer, c.Request, client)
}
