package repository

import "context"

// Repository stores criteria keyed by repository full name. Keys are
// case-insensitive. Implementations are safe for concurrent use.
type Repository interface {
	Get(ctx context.Context, repo string) (string, bool, error)
	Set(ctx context.Context, repo, criteria string) error
}
