package usecase

import (
	"time"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/log"
)

// DefaultTimeout bounds the processing of one event.
const DefaultTimeout = 3 * time.Minute

// Config tunes the orchestrator.
type Config struct {
	// TestContributorWallet overrides wallet resolution when set.
	TestContributorWallet string
	Timeout               time.Duration
}

// Deps are the collaborators of the orchestrator.
type Deps struct {
	Backend   backend.Gateway
	GitHub    github.IGitHub
	Review    review.UseCase
	Bounty    bounty.UseCase
	Publisher comment.Publisher
}

// implUseCase is the private implementation of webhook.UseCase.
type implUseCase struct {
	cfg       Config
	backend   backend.Gateway
	gh        github.IGitHub
	review    review.UseCase
	bounty    bounty.UseCase
	publisher comment.Publisher
	l         log.Logger
}

// New creates the webhook orchestrator.
func New(cfg Config, deps Deps, l log.Logger) *implUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &implUseCase{
		cfg:       cfg,
		backend:   deps.Backend,
		gh:        deps.GitHub,
		review:    deps.Review,
		bounty:    deps.Bounty,
		publisher: deps.Publisher,
		l:         l,
	}
}
