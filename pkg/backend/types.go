package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Config holds backend client configuration
type Config struct {
	BaseURL     string
	AgentSecret string
	HTTPClient  *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("backend: BaseURL is required")
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Bounty is the backend's bounty record.
type Bounty struct {
	ID           string  `json:"id"`
	RepoFullName string  `json:"repoFullName,omitempty"`
	IssueNumber  *int    `json:"issueNumber,omitempty"`
	PRNumber     *int    `json:"prNumber,omitempty"`
	Amount       Decimal `json:"amount"`
	Status       string  `json:"status"`
}

// IsOpen reports whether the bounty can still be paid.
func (b *Bounty) IsOpen() bool {
	return b != nil && b.Status == StatusOpen
}

// Decimal is a decimal amount kept as its literal text. It accepts both JSON
// strings and JSON numbers without passing through float64.
type Decimal string

func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Decimal(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("backend: amount is neither string nor number: %w", err)
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) String() string {
	return string(d)
}

// BountyAndToken is the result of a PR lookup.
type BountyAndToken struct {
	Bounty      *Bounty `json:"bounty"`
	GitHubToken string  `json:"githubToken"`
}

// AttachBountyRequest is the body for POST /api/bounty/attach.
type AttachBountyRequest struct {
	Repo        string `json:"repo"`
	IssueNumber *int   `json:"issueNumber,omitempty"`
	PRNumber    *int   `json:"prNumber,omitempty"`
	Amount      string `json:"amount"`
}

// RegisterRepoRequest is the body for POST /api/repo/register.
type RegisterRepoRequest struct {
	Repo             string `json:"repo"`
	MaintainerNearID string `json:"maintainerNearId"`
}

type bountyEnvelope struct {
	Bounty *Bounty `json:"bounty"`
}

type bountyAndTokenEnvelope struct {
	Bounty      *Bounty `json:"bounty"`
	GitHubToken *string `json:"githubToken"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type clientImpl struct {
	baseURL     string
	agentSecret string
	httpClient  *http.Client
}
