// Package nearagent is the HTTP client for the chain agent that holds the
// signing key and talks to the bounty contract.
package nearagent

import (
	"context"
	"encoding/json"
)

// IAgent defines the chain agent operations.
// Implementations are safe for concurrent use.
type IAgent interface {
	// View runs a read-only contract method and returns its raw JSON result.
	View(ctx context.Context, method string, args any) (json.RawMessage, error)

	// Call signs and submits a contract call. A failure after the
	// transaction was broadcast is a *CallError with TxHash set.
	Call(ctx context.Context, method string, args any) (*CallResult, error)

	// AccountID returns the agent's NEAR account.
	AccountID(ctx context.Context) (string, error)
}

// New creates a new chain agent client with the given configuration
func New(cfg Config) (IAgent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &agentImpl{baseURL: cfg.BaseURL, httpClient: cfg.HTTPClient}, nil
}
