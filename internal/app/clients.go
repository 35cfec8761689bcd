package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/yungbote/studyforge-backend/internal/clients/openai"
	redisclient "github.com/yungbote/studyforge-backend/internal/clients/redis"
	"github.com/yungbote/studyforge-backend/internal/platform/logger"
)

type Clients struct {
	AI openai.Client
	// SSEBus is nil unless REDIS_ADDR is configured; single-instance
	// deployments broadcast straight into the local hub.
	SSEBus redisclient.SSEBus
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	ai, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, fmt.Errorf("init openai client: %w", err)
	}

	var bus redisclient.SSEBus
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		bus, err = redisclient.NewSSEBus(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis SSE bus: %w", err)
		}
	}

	return Clients{AI: ai, SSEBus: bus}, nil
}
