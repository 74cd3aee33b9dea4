package github

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Config holds GitHub client configuration
type Config struct {
	// BaseURL overrides https://api.github.com/ (GitHub Enterprise, tests).
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if !strings.HasSuffix(c.BaseURL, "/") {
			c.BaseURL += "/"
		}
		if _, err := url.Parse(c.BaseURL); err != nil {
			return fmt.Errorf("github: invalid BaseURL: %w", err)
		}
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Comment is one issue or pull request comment.
type Comment struct {
	Body   string
	Author string

	// AuthorAssociation is GitHub's OWNER, MEMBER, COLLABORATOR,
	// CONTRIBUTOR, NONE and so on.
	AuthorAssociation string
}

type githubImpl struct {
	baseURL    string
	httpClient *http.Client
}

// SplitRepo splits "owner/name" into its parts.
func SplitRepo(fullName string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepoName, fullName)
	}
	return owner, repo, nil
}
