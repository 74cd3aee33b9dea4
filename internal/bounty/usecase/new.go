package usecase

import (
	"context"
	"sync"
	"time"

	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/ledger/repository"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/log"
	"github-bounty-agent/pkg/nearagent"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultAttempts   = 3
	defaultRetryDelay = time.Second

	// inFlightTTL bounds how long a crashed release can block its PR.
	inFlightTTL  = 10 * time.Minute
	inFlightSize = 4096
)

// Config tunes the payout engine.
type Config struct {
	Network string

	// Attempts is the total number of release_bounty tries per release.
	Attempts int

	// RetryDelay is multiplied by the attempt number between tries.
	RetryDelay time.Duration

	// MaintainerSecret guards ManualRelease and RegisterRepo.
	MaintainerSecret string

	// FallbackToken is used for result comments when the caller has no
	// delegated token.
	FallbackToken string
}

// Deps are the collaborators of the payout engine.
type Deps struct {
	Agent     nearagent.IAgent
	Ledger    repository.Repository
	Backend   backend.Gateway
	GitHub    github.IGitHub
	Publisher comment.Publisher
}

// implUseCase is the private implementation of bounty.UseCase.
type implUseCase struct {
	cfg       Config
	agent     nearagent.IAgent
	ledger    repository.Repository
	backend   backend.Gateway
	gh        github.IGitHub
	publisher comment.Publisher
	l         log.Logger

	mu       sync.Mutex
	inFlight *expirable.LRU[string, struct{}]

	wait func(context.Context, time.Duration) error
	now  func() time.Time
}

// New creates the payout engine.
func New(cfg Config, deps Deps, l log.Logger) *implUseCase {
	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &implUseCase{
		cfg:       cfg,
		agent:     deps.Agent,
		ledger:    deps.Ledger,
		backend:   deps.Backend,
		gh:        deps.GitHub,
		publisher: deps.Publisher,
		l:         l,
		inFlight:  expirable.NewLRU[string, struct{}](inFlightSize, nil, inFlightTTL),
		wait:      sleepCtx,
		now:       time.Now,
	}
}
