// Package github wraps the GitHub REST calls the agent makes on behalf of a
// repository owner. Every call takes the delegated token explicitly; no
// token is stored by the client.
package github

import "context"

// IGitHub defines the GitHub operations used by the agent.
// Implementations are safe for concurrent use.
type IGitHub interface {
	// FetchDiff downloads the unified diff of a pull request.
	FetchDiff(ctx context.Context, diffURL, token string) (string, error)

	// CreateComment posts a comment on an issue or pull request.
	CreateComment(ctx context.Context, repoFullName string, number int, body, token string) error

	// ListComments returns all comments on an issue or pull request in
	// chronological order.
	ListComments(ctx context.Context, repoFullName string, number int, token string) ([]Comment, error)
}

// New creates a new GitHub client with the given configuration
func New(cfg Config) (IGitHub, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGitHubImpl(cfg), nil
}
