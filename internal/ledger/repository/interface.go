package repository

import (
	"context"

	"github-bounty-agent/internal/ledger"
)

// Repository is the append-only payout ledger. Repository names compare
// case-insensitively. Implementations are safe for concurrent use.
type Repository interface {
	Append(ctx context.Context, attempt ledger.PayoutAttempt) error
	List(ctx context.Context, opt ListOptions) ([]ledger.PayoutAttempt, error)
	Stats(ctx context.Context) (ledger.Stats, error)

	// Settled returns the successful or unconfirmed attempt for
	// (repo, prNumber), or nil when a release may proceed. A success wins
	// over an unconfirmed attempt.
	Settled(ctx context.Context, repo string, prNumber int) (*ledger.PayoutAttempt, error)
}
