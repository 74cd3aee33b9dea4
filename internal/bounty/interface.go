package bounty

import (
	"context"

	"github-bounty-agent/internal/ledger"
)

// UseCase is the payout engine.
type UseCase interface {
	// Release pays a contributor at most once per (repo, PR). It writes
	// exactly one ledger entry for every call that reaches the chain step.
	Release(ctx context.Context, input ReleaseInput) (ReleaseOutput, error)

	// ManualRelease is Release behind the maintainer secret.
	ManualRelease(ctx context.Context, input ManualReleaseInput) (ReleaseOutput, error)

	// ResolveWallet finds the contributor wallet: override, then the PR
	// body, then PR comments oldest first. It never derives a wallet from
	// a GitHub handle.
	ResolveWallet(ctx context.Context, input WalletInput) (string, error)

	Balance(ctx context.Context, repo string) (Balance, error)
	RegisterRepo(ctx context.Context, input RegisterRepoInput) error
	History(ctx context.Context, repo string) ([]ledger.PayoutAttempt, error)
	Stats(ctx context.Context) (ledger.Stats, error)
}
