package llmprovider

import (
	"context"

	"github-bounty-agent/pkg/nearai"
)

// NearAIAdapter adapts pkg/nearai to llmprovider.Provider interface
type NearAIAdapter struct {
	name   string
	client nearai.INearAI
}

// NewNearAIAdapter creates a new NEAR AI adapter
func NewNearAIAdapter(name string, client nearai.INearAI) *NearAIAdapter {
	if name == "" {
		name = ProviderNearAI
	}
	return &NearAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *NearAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]nearai.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = nearai.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &nearai.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *NearAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *NearAIAdapter) Model() string {
	return a.client.Model()
}
