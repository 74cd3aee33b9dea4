package backend

import "time"

const (
	// AgentSecretHeader carries the pre-shared agent credential on every call.
	AgentSecretHeader = "x-agent-secret"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	StatusOpen = "open"
	StatusPaid = "paid"
)
