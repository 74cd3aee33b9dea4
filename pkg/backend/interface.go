package backend

import "context"

// Gateway is the typed client for the bounty backend.
// Implementations are safe for concurrent use.
type Gateway interface {
	// GetBountyAndToken returns the open bounty (if any) and the delegated
	// GitHub token for a pull request. A missing token is ErrNoDelegatedToken.
	GetBountyAndToken(ctx context.Context, owner, repo string, prNumber int) (*BountyAndToken, error)

	// AttachBounty creates or updates the bounty of an issue or PR.
	AttachBounty(ctx context.Context, req AttachBountyRequest) (*Bounty, error)

	// MarkPaid transitions a bounty from open to paid.
	MarkPaid(ctx context.Context, bountyID string) (*Bounty, error)

	// RegisterRepo records the maintainer NEAR account for a repository.
	RegisterRepo(ctx context.Context, req RegisterRepoRequest) error
}

// New creates a new backend Gateway with the given configuration
func New(cfg Config) (Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &clientImpl{
		baseURL:     cfg.BaseURL,
		agentSecret: cfg.AgentSecret,
		httpClient:  cfg.HTTPClient,
	}, nil
}
