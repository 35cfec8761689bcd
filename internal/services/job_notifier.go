package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/studyforge-backend/internal/sse"
	"github.com/yungbote/studyforge-backend/internal/types"
)

// JobNotifier pushes generation-job transitions to the owner's SSE channel.
// Events are best effort; delivery failures never affect the pipeline.
type JobNotifier interface {
	JobStarted(ctx context.Context, userID uuid.UUID, job *types.GenerationJob)
	JobSucceeded(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, resultID uuid.UUID)
	JobFailed(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, errorMessage string)
}

type jobNotifier struct {
	emit SSEEmitter
}

func NewJobNotifier(emit SSEEmitter) JobNotifier {
	return &jobNotifier{emit: emit}
}

func (n *jobNotifier) JobStarted(ctx context.Context, userID uuid.UUID, job *types.GenerationJob) {
	n.emit.Emit(ctx, sse.SSEMessage{
		Channel: userID.String(),
		Event:   sse.SSEEventJobStarted,
		Data: map[string]any{
			"job_id": job.ID,
			"kind":   job.Kind,
			"job":    job,
		},
	})
}

func (n *jobNotifier) JobSucceeded(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, resultID uuid.UUID) {
	n.emit.Emit(ctx, sse.SSEMessage{
		Channel: userID.String(),
		Event:   sse.SSEEventJobSucceeded,
		Data: map[string]any{
			"job_id":    job.ID,
			"kind":      job.Kind,
			"result_id": resultID,
			"job":       job,
		},
	})
}

func (n *jobNotifier) JobFailed(ctx context.Context, userID uuid.UUID, job *types.GenerationJob, errorMessage string) {
	n.emit.Emit(ctx, sse.SSEMessage{
		Channel: userID.String(),
		Event:   sse.SSEEventJobFailed,
		Data: map[string]any{
			"job_id": job.ID,
			"kind":   job.Kind,
			"error":  errorMessage,
			"job":    job,
		},
	})
}
