package github

import (
	"context"
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

func newGitHubImpl(cfg Config) *githubImpl {
	return &githubImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// client builds a go-github client authenticated with a per-call token.
// The underlying transport and timeout come from the configured http.Client.
func (g *githubImpl) client(ctx context.Context, token string) (*gh.Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.httpClient)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	httpClient.Timeout = g.httpClient.Timeout

	c := gh.NewClient(httpClient)
	if g.baseURL != "" {
		u, err := url.Parse(g.baseURL)
		if err != nil {
			return nil, fmt.Errorf("github: invalid base URL: %w", err)
		}
		c.BaseURL = u
	}
	return c, nil
}

// CreateComment posts body on issue or PR number via the issues API.
func (g *githubImpl) CreateComment(ctx context.Context, repoFullName string, number int, body, token string) error {
	owner, repo, err := SplitRepo(repoFullName)
	if err != nil {
		return err
	}

	c, err := g.client(ctx, token)
	if err != nil {
		return err
	}

	if _, _, err := c.Issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{Body: gh.Ptr(body)}); err != nil {
		return fmt.Errorf("github: create comment on %s#%d: %w", repoFullName, number, err)
	}
	return nil
}

// ListComments pages through every comment of issue or PR number.
func (g *githubImpl) ListComments(ctx context.Context, repoFullName string, number int, token string) ([]Comment, error) {
	owner, repo, err := SplitRepo(repoFullName)
	if err != nil {
		return nil, err
	}

	c, err := g.client(ctx, token)
	if err != nil {
		return nil, err
	}

	opts := &gh.IssueListCommentsOptions{
		Sort:        gh.Ptr("created"),
		Direction:   gh.Ptr("asc"),
		ListOptions: gh.ListOptions{PerPage: commentsPerPage},
	}

	var out []Comment
	for {
		comments, resp, err := c.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("github: list comments on %s#%d: %w", repoFullName, number, err)
		}
		for _, cm := range comments {
			out = append(out, Comment{
				Body:              cm.GetBody(),
				Author:            cm.GetUser().GetLogin(),
				AuthorAssociation: cm.GetAuthorAssociation(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}
