package usecase

import (
	"context"
	"errors"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/model"
	"github-bounty-agent/internal/webhook"
)

func (uc *implUseCase) handleMerge(ctx context.Context, event model.WebhookEvent, intent webhook.Intent) (string, error) {
	bt, err := uc.bountyAndToken(ctx, event.RepoFullName, intent.PRNumber)
	if err != nil {
		return "", err
	}
	if !bt.Bounty.IsOpen() {
		uc.l.Infof(ctx, "webhook.usecase.handleMerge: no open bounty for %s#%d", event.RepoFullName, intent.PRNumber)
		return webhook.StatusNoBountyForMerge, nil
	}

	wallet, err := uc.bounty.ResolveWallet(ctx, bounty.WalletInput{
		Override:     uc.cfg.TestContributorWallet,
		RepoFullName: event.RepoFullName,
		PRNumber:     intent.PRNumber,
		PRBody:       event.Body,
		Contributor:  event.Contributor,
		Token:        bt.GitHubToken,
	})
	if errors.Is(err, bounty.ErrNoWallet) {
		uc.l.Warnf(ctx, "webhook.usecase.handleMerge: no wallet linked on %s#%d, payout skipped", event.RepoFullName, intent.PRNumber)
		return webhook.StatusSkippedNoWallet, nil
	}
	if err != nil {
		return "", err
	}

	_, err = uc.bounty.Release(ctx, bounty.ReleaseInput{
		RepoFullName:      event.RepoFullName,
		ContributorWallet: wallet,
		PRNumber:          intent.PRNumber,
		Amount:            bt.Bounty.Amount.String(),
		BountyID:          bt.Bounty.ID,
		Token:             bt.GitHubToken,
	})
	switch {
	case err == nil:
		return webhook.StatusProcessedMerge, nil
	case errors.Is(err, bounty.ErrAlreadyPaid), errors.Is(err, bounty.ErrReleaseInProgress),
		errors.Is(err, bounty.ErrPayoutUnconfirmed):
		uc.l.Infof(ctx, "webhook.usecase.handleMerge: %s#%d: %v", event.RepoFullName, intent.PRNumber, err)
		return webhook.StatusNoBountyForMerge, nil
	default:
		return "", err
	}
}
