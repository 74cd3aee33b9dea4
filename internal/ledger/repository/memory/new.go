// Package memory is the process-local payout ledger. Entries do not survive
// a restart.
package memory

import (
	"context"
	"strings"
	"sync"

	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/internal/ledger/repository"
)

type implRepository struct {
	mu      sync.RWMutex
	entries []ledger.PayoutAttempt
}

// New creates an empty in-memory ledger.
func New() repository.Repository {
	return &implRepository{}
}

func (r *implRepository) Append(ctx context.Context, attempt ledger.PayoutAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, attempt)
	return nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]ledger.PayoutAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ledger.PayoutAttempt, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if opt.Repo != "" && !strings.EqualFold(e.Repo, opt.Repo) {
			continue
		}
		out = append(out, e)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func (r *implRepository) Stats(ctx context.Context) (ledger.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := ledger.Stats{Total: len(r.entries)}
	for _, e := range r.entries {
		if e.Success {
			s.Successful++
		}
	}
	s.Failed = s.Total - s.Successful
	return s, nil
}

func (r *implRepository) Settled(ctx context.Context, repo string, prNumber int) (*ledger.PayoutAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *ledger.PayoutAttempt
	for i := range r.entries {
		e := r.entries[i]
		if e.PRNumber != prNumber || !strings.EqualFold(e.Repo, repo) {
			continue
		}
		if e.Success {
			return &e, nil
		}
		if e.Unconfirmed && found == nil {
			found = &e
		}
	}
	return found, nil
}
