package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github-bounty-agent/internal/ledger/repository"
	"github-bounty-agent/pkg/log"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS payout_attempts (
    id                 TEXT PRIMARY KEY,
    repo               TEXT        NOT NULL,
    pr_number          INTEGER     NOT NULL,
    contributor_wallet TEXT        NOT NULL,
    amount             TEXT        NOT NULL,
    success            BOOLEAN     NOT NULL,
    unconfirmed        BOOLEAN     NOT NULL DEFAULT false,
    tx_hash            TEXT        NOT NULL DEFAULT '',
    error              TEXT        NOT NULL DEFAULT '',
    created_at         TIMESTAMPTZ NOT NULL
);
ALTER TABLE payout_attempts ADD COLUMN IF NOT EXISTS unconfirmed BOOLEAN NOT NULL DEFAULT false;
CREATE INDEX IF NOT EXISTS payout_attempts_repo_pr_idx ON payout_attempts (lower(repo), pr_number);
CREATE UNIQUE INDEX IF NOT EXISTS payout_attempts_one_success_idx
    ON payout_attempts (lower(repo), pr_number) WHERE success;
`

type implRepository struct {
	db *pgxpool.Pool
	l  log.Logger
}

// New creates a PostgreSQL-backed ledger. Call Migrate before use.
func New(db *pgxpool.Pool, l log.Logger) *implRepository {
	if db == nil {
		panic("ledger/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Connect opens a pool for dsn and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

// Migrate creates the ledger table if it does not exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%s: %w", r.scope("Migrate"), err)
	}
	return nil
}

// scope returns the method-scoped prefix used in log lines and errors.
func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("ledger/repository/postgre.%s", method)
}

var _ repository.Repository = (*implRepository)(nil)
