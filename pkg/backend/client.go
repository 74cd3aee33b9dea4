package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// GetBountyAndToken calls GET /api/bounty/:owner/:repo/pr/:prNumber.
func (c *clientImpl) GetBountyAndToken(ctx context.Context, owner, repo string, prNumber int) (*BountyAndToken, error) {
	const op = "get bounty and token"
	path := fmt.Sprintf("/api/bounty/%s/%s/pr/%d", url.PathEscape(owner), url.PathEscape(repo), prNumber)

	var env bountyAndTokenEnvelope
	if err := c.do(ctx, op, http.MethodGet, path, nil, &env); err != nil {
		var depErr *DependencyError
		if errors.As(err, &depErr) && depErr.Kind == KindNotFound {
			depErr.Err = fmt.Errorf("%w: %v", ErrNoDelegatedToken, depErr.Err)
		}
		return nil, err
	}

	if env.GitHubToken == nil || strings.TrimSpace(*env.GitHubToken) == "" {
		return nil, &DependencyError{Op: op, Kind: KindUnauthorized, Err: ErrNoDelegatedToken}
	}

	return &BountyAndToken{Bounty: env.Bounty, GitHubToken: *env.GitHubToken}, nil
}

// AttachBounty calls POST /api/bounty/attach.
func (c *clientImpl) AttachBounty(ctx context.Context, req AttachBountyRequest) (*Bounty, error) {
	var env bountyEnvelope
	if err := c.do(ctx, "attach bounty", http.MethodPost, "/api/bounty/attach", req, &env); err != nil {
		return nil, err
	}
	return env.Bounty, nil
}

// MarkPaid calls POST /api/bounty/:id/mark-paid.
func (c *clientImpl) MarkPaid(ctx context.Context, bountyID string) (*Bounty, error) {
	path := fmt.Sprintf("/api/bounty/%s/mark-paid", url.PathEscape(bountyID))

	var env bountyEnvelope
	if err := c.do(ctx, "mark paid", http.MethodPost, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Bounty, nil
}

// RegisterRepo calls POST /api/repo/register.
func (c *clientImpl) RegisterRepo(ctx context.Context, req RegisterRepoRequest) error {
	const op = "register repo"

	var resp registerResponse
	if err := c.do(ctx, op, http.MethodPost, "/api/repo/register", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return &DependencyError{Op: op, Kind: KindUnavailable, Err: fmt.Errorf("backend refused: %s", resp.Error)}
	}
	return nil
}

// do sends one request and decodes a 2xx JSON body into out.
func (c *clientImpl) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend %s: failed to marshal request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("backend %s: failed to build request: %w", op, err)
	}
	httpReq.Header.Set(AgentSecretHeader, c.agentSecret)
	httpReq.Header.Set("Accept", "application/json")
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &DependencyError{Op: op, Kind: KindUnavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &DependencyError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Kind:       kindForStatus(resp.StatusCode),
			Err:        errors.New(strings.TrimSpace(string(raw))),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DependencyError{Op: op, StatusCode: resp.StatusCode, Kind: KindUnavailable,
			Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
