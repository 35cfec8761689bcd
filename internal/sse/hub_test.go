package sse

import (
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/platform/logger"
)

func newTestHub(t *testing.T) *SSEHub {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewSSEHub(log)
}

func TestBroadcastReachesSubscribedChannelOnly(t *testing.T) {
	hub := newTestHub(t)

	owner := uuid.New()
	other := uuid.New()

	subscribed := hub.NewSSEClient(owner)
	hub.AddChannel(subscribed, owner.String())
	bystander := hub.NewSSEClient(other)
	hub.AddChannel(bystander, other.String())

	hub.Broadcast(SSEMessage{
		Channel: owner.String(),
		Event:   SSEEventJobStarted,
		Data:    map[string]any{"job_id": uuid.New().String()},
	})

	select {
	case msg := <-subscribed.Outbound:
		if msg.Event != SSEEventJobStarted {
			t.Fatalf("event=%q, want %q", msg.Event, SSEEventJobStarted)
		}
	default:
		t.Fatalf("subscribed client received nothing")
	}

	select {
	case msg := <-bystander.Outbound:
		t.Fatalf("bystander received %+v, want nothing", msg)
	default:
	}
}

func TestBroadcastToEmptyChannelIsNoop(t *testing.T) {
	hub := newTestHub(t)
	// Must not panic or block with no subscribers.
	hub.Broadcast(SSEMessage{Channel: uuid.New().String(), Event: SSEEventJobFailed})
	hub.Broadcast(SSEMessage{Event: SSEEventJobFailed})
}

func TestRemoveClientStopsDelivery(t *testing.T) {
	hub := newTestHub(t)

	owner := uuid.New()
	client := hub.NewSSEClient(owner)
	hub.AddChannel(client, owner.String())
	hub.RemoveClient(client)

	hub.Broadcast(SSEMessage{Channel: owner.String(), Event: SSEEventJobSucceeded})

	select {
	case msg := <-client.Outbound:
		t.Fatalf("removed client received %+v", msg)
	default:
	}
}

func TestFullOutboundBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := newTestHub(t)

	owner := uuid.New()
	client := hub.NewSSEClient(owner)
	hub.AddChannel(client, owner.String())

	for i := 0; i < cap(client.Outbound)+5; i++ {
		hub.Broadcast(SSEMessage{Channel: owner.String(), Event: SSEEventJobStarted})
	}

	if got := len(client.Outbound); got != cap(client.Outbound) {
		t.Fatalf("buffered=%d, want full buffer %d", got, cap(client.Outbound))
	}
}
