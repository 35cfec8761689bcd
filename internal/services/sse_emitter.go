package services

import (
	"context"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
	"github.com/yungbote/studyforge-backend/internal/sse"
)

type SSEEmitter interface {
	Emit(ctx context.Context, msg sse.SSEMessage)
}

// HubEmitter broadcasts to clients connected to this instance. Used when no
// cross-instance bus is configured.
type HubEmitter struct{ Hub *sse.SSEHub }

func (e *HubEmitter) Emit(ctx context.Context, msg sse.SSEMessage) {
	e.Hub.Broadcast(msg)
}

// SSEPublisher is the cross-instance fanout surface, implemented by the
// redis pub/sub bus client.
type SSEPublisher interface {
	Publish(ctx context.Context, msg sse.SSEMessage) error
}

// BusEmitter publishes to the shared bus; every instance's forwarder (this
// one included) broadcasts received messages into its local hub, so each
// connected client sees the event exactly once.
type BusEmitter struct {
	Bus SSEPublisher
	Log *logger.Logger
}

func (e *BusEmitter) Emit(ctx context.Context, msg sse.SSEMessage) {
	if err := e.Bus.Publish(ctx, msg); err != nil && e.Log != nil {
		e.Log.Warn("SSE publish failed", "event", msg.Event, "error", err.Error())
	}
}
