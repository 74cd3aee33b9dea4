package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github-bounty-agent/internal/ledger"
	repo "github-bounty-agent/internal/ledger/repository"
)

const (
	insertAttemptQuery = `
INSERT INTO payout_attempts (id, repo, pr_number, contributor_wallet, amount, success, unconfirmed, tx_hash, error, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	selectAttemptsQuery = `
SELECT id, repo, pr_number, contributor_wallet, amount, success, unconfirmed, tx_hash, error, created_at
FROM payout_attempts`

	statsQuery = `
SELECT COUNT(*), COUNT(*) FILTER (WHERE success)
FROM payout_attempts`

	settledQuery = selectAttemptsQuery + `
WHERE lower(repo) = lower($1) AND pr_number = $2 AND (success OR unconfirmed)
ORDER BY success DESC, created_at DESC
LIMIT 1`
)

// Append inserts one attempt.
func (r *implRepository) Append(ctx context.Context, a ledger.PayoutAttempt) error {
	_, err := r.db.Exec(ctx, insertAttemptQuery,
		a.ID, a.Repo, a.PRNumber, a.ContributorWallet, a.Amount, a.Success, a.Unconfirmed, a.TxHash, a.Error, a.Timestamp)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("Append"), err)
		return fmt.Errorf("%w: %v", ledger.ErrFailedToAppend, err)
	}
	return nil
}

// List returns attempts newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]ledger.PayoutAttempt, error) {
	query, args := buildListQuery(opt)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("List"), err)
		return nil, ledger.ErrFailedToList
	}
	defer rows.Close()

	out := make([]ledger.PayoutAttempt, 0)
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.scope("List"), err)
			return nil, ledger.ErrFailedToList
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.scope("List"), err)
		return nil, ledger.ErrFailedToList
	}
	return out, nil
}

// Stats counts all attempts.
func (r *implRepository) Stats(ctx context.Context) (ledger.Stats, error) {
	var s ledger.Stats
	if err := r.db.QueryRow(ctx, statsQuery).Scan(&s.Total, &s.Successful); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("Stats"), err)
		return ledger.Stats{}, ledger.ErrFailedToList
	}
	s.Failed = s.Total - s.Successful
	return s, nil
}

// Settled returns the attempt that blocks a new release of (repo, prNumber).
func (r *implRepository) Settled(ctx context.Context, repoName string, prNumber int) (*ledger.PayoutAttempt, error) {
	a, err := scanAttempt(r.db.QueryRow(ctx, settledQuery, repoName, prNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("Settled"), err)
		return nil, ledger.ErrFailedToList
	}
	return &a, nil
}

func scanAttempt(row pgx.Row) (ledger.PayoutAttempt, error) {
	var a ledger.PayoutAttempt
	err := row.Scan(&a.ID, &a.Repo, &a.PRNumber, &a.ContributorWallet, &a.Amount,
		&a.Success, &a.Unconfirmed, &a.TxHash, &a.Error, &a.Timestamp)
	return a, err
}

func buildListQuery(opt repo.ListOptions) (string, []any) {
	var parts []string
	var args []any
	idx := 1

	parts = append(parts, selectAttemptsQuery)
	if opt.Repo != "" {
		parts = append(parts, fmt.Sprintf("WHERE lower(repo) = lower($%d)", idx))
		args = append(args, opt.Repo)
		idx++
	}
	parts = append(parts, "ORDER BY created_at DESC")
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}
	return strings.Join(parts, " "), args
}
