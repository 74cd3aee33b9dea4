package usecase

import (
	"context"

	"github-bounty-agent/internal/model"
	"github-bounty-agent/internal/webhook"
	"github-bounty-agent/pkg/backend"
)

// handleBountySync attaches the commanded bounty. Failures are logged only.
func (uc *implUseCase) handleBountySync(ctx context.Context, event model.WebhookEvent, intent webhook.Intent) string {
	n := intent.TargetNumber
	req := backend.AttachBountyRequest{Repo: event.RepoFullName, Amount: intent.Amount}
	if intent.IsIssue {
		req.IssueNumber = &n
	} else {
		req.PRNumber = &n
	}

	b, err := uc.backend.AttachBounty(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "webhook.usecase.handleBountySync: backend.AttachBounty %s#%d: %v", event.RepoFullName, n, err)
		return webhook.StatusProcessedSync
	}
	if b != nil {
		uc.l.Infof(ctx, "webhook.usecase.handleBountySync: bounty %s set to %s NEAR on %s#%d", b.ID, intent.Amount, event.RepoFullName, n)
	}
	return webhook.StatusProcessedSync
}

// runSideIntents runs the fire-and-forget intents of event.
func (uc *implUseCase) runSideIntents(ctx context.Context, event model.WebhookEvent, token string) {
	for _, side := range webhook.SideIntents(event) {
		if side.Kind != webhook.IntentIssueLink {
			continue
		}
		for _, issue := range side.ReferencedIssues {
			uc.publisher.PostIssueLink(ctx, event.RepoFullName, issue, side.PRNumber, token)
		}
	}
}
