package services

import "context"

// CompletionClient is the completion-service boundary as the services see it.
// The concrete client lives in internal/clients/openai and is constructed once
// in internal/app, then passed in here; tests substitute deterministic fakes.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
