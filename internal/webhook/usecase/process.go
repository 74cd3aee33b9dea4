package usecase

import (
	"context"

	"github-bounty-agent/internal/model"
	"github-bounty-agent/internal/webhook"
)

func (uc *implUseCase) Process(ctx context.Context, event model.WebhookEvent) (webhook.ProcessOutput, error) {
	// A delivery runs to completion even if GitHub hangs up.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.Timeout)
	defer cancel()

	intent := webhook.Classify(event)
	uc.l.Infof(ctx, "webhook.usecase.Process: %s/%s on %s#%d -> %s",
		event.EventType, event.Action, event.RepoFullName, event.Number, intent.Kind)

	var (
		status string
		err    error
	)
	switch intent.Kind {
	case webhook.IntentReviewRequest:
		status, err = uc.handleReview(ctx, event, intent)
	case webhook.IntentMergePayout:
		status, err = uc.handleMerge(ctx, event, intent)
	case webhook.IntentBountySync:
		status = uc.handleBountySync(ctx, event, intent)
	default:
		status = webhook.StatusIgnored
	}
	if err != nil {
		return webhook.ProcessOutput{}, err
	}
	return webhook.ProcessOutput{Status: status}, nil
}
