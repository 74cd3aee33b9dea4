package http

import (
	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc bounty.UseCase
}

// New creates a new HTTP handler for the bounty domain.
func New(l log.Logger, uc bounty.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
