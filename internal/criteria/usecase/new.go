package usecase

import (
	"github-bounty-agent/internal/criteria/repository"
	"github-bounty-agent/pkg/log"
)

// implUseCase is the private implementation of criteria.UseCase.
type implUseCase struct {
	repo   repository.Repository
	secret string
	l      log.Logger
}

// New creates a criteria UseCase. secret is the maintainer secret required by Set.
func New(repo repository.Repository, secret string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		secret: secret,
		l:      l,
	}
}
