package usecase

import (
	"context"

	"github-bounty-agent/internal/criteria"
	"github-bounty-agent/pkg/llmprovider"
	"github-bounty-agent/pkg/log"
)

const (
	// DefaultCriteria applies when neither the caller nor the repository
	// supplies criteria.
	DefaultCriteria = "Code must be readable, well structured, and solve the stated problem."

	temperature = 0.2
)

// Generator is the completion backend. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	llm      Generator
	criteria criteria.UseCase
	l        log.Logger
}

// New creates a review UseCase. criteriaUC may be nil.
func New(llm Generator, criteriaUC criteria.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		llm:      llm,
		criteria: criteriaUC,
		l:        l,
	}
}
