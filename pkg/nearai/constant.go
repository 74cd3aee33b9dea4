package nearai

import "time"

const (
	// DefaultModel is the default NEAR AI model
	DefaultModel = "openai/gpt-5.2"

	// DefaultBaseURL is the default NEAR AI Cloud endpoint
	DefaultBaseURL = "https://cloud-api.near.ai/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 90 * time.Second
)
