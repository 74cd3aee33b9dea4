package usecase

import (
	"context"
	"errors"
	"fmt"

	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/model"
	"github-bounty-agent/internal/review"
	"github-bounty-agent/internal/webhook"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
)

func (uc *implUseCase) handleReview(ctx context.Context, event model.WebhookEvent, intent webhook.Intent) (string, error) {
	if !intent.Metadata.Complete() {
		return "", webhook.ErrIncompleteMetadata
	}

	bt, err := uc.bountyAndToken(ctx, event.RepoFullName, intent.PRNumber)
	if err != nil {
		return "", err
	}

	uc.runSideIntents(ctx, event, bt.GitHubToken)

	diff, err := uc.gh.FetchDiff(ctx, intent.DiffURL, bt.GitHubToken)
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.handleReview: gh.FetchDiff: %v", err)
		return "", err
	}
	diff, truncated := github.TruncateDiff(diff, github.MaxDiffChars)
	if truncated {
		uc.l.Warnf(ctx, "webhook.usecase.handleReview: diff of %s#%d truncated to %d characters",
			event.RepoFullName, intent.PRNumber, github.MaxDiffChars)
	}

	verdict, err := uc.review.Review(ctx, review.Input{
		Diff:         diff,
		RepoFullName: event.RepoFullName,
		Metadata:     intent.Metadata,
	})
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.handleReview: review.Review: %v", err)
		return "", err
	}

	extra := comment.ReviewExtra{DiffTruncated: truncated}
	if bt.Bounty.IsOpen() {
		extra.BountyAmount = bt.Bounty.Amount.String()
	}
	uc.publisher.PostReview(ctx, event.RepoFullName, intent.PRNumber, verdict, bt.GitHubToken, extra)

	uc.l.Infof(ctx, "webhook.usecase.handleReview: %s#%d reviewed, approved=%t score=%d",
		event.RepoFullName, intent.PRNumber, verdict.Approved, verdict.Score)
	return webhook.StatusProcessed, nil
}

// bountyAndToken fetches the PR's bounty and a fresh delegated token.
func (uc *implUseCase) bountyAndToken(ctx context.Context, repoFullName string, prNumber int) (*backend.BountyAndToken, error) {
	owner, repo, err := github.SplitRepo(repoFullName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", webhook.ErrMalformedPayload, err)
	}

	bt, err := uc.backend.GetBountyAndToken(ctx, owner, repo, prNumber)
	if err != nil {
		if errors.Is(err, backend.ErrNoDelegatedToken) {
			uc.l.Warnf(ctx, "webhook.usecase.bountyAndToken: %s has no delegated token", repoFullName)
		} else {
			uc.l.Errorf(ctx, "webhook.usecase.bountyAndToken: backend.GetBountyAndToken: %v", err)
		}
		return nil, err
	}
	return bt, nil
}
