package webhook

import (
	"context"

	"github-bounty-agent/internal/model"
)

// UseCase orchestrates one verified webhook delivery.
type UseCase interface {
	// Process classifies the event and runs its intent to a terminal state.
	// Best-effort side paths never change the returned status.
	Process(ctx context.Context, event model.WebhookEvent) (ProcessOutput, error)
}
