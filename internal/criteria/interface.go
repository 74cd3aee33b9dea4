package criteria

import "context"

// UseCase manages per-repository review criteria.
type UseCase interface {
	// Get returns the stored criteria for repo, or "" when none is set.
	Get(ctx context.Context, repo string) (string, error)

	// Set stores criteria for repo after checking the maintainer secret.
	Set(ctx context.Context, input SetInput) error
}
