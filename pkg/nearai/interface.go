package nearai

import "context"

// INearAI defines the interface for the NEAR AI Cloud chat completions API.
// Implementations are safe for concurrent use.
type INearAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new NEAR AI client with the given configuration
func New(cfg Config) (INearAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newNearAIImpl(cfg), nil
}
