package http

import (
	"github-bounty-agent/internal/criteria"
	"github-bounty-agent/pkg/log"
)

type handler struct {
	l  log.Logger
	uc criteria.UseCase
}

// New creates a new HTTP handler for the criteria domain.
func New(l log.Logger, uc criteria.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
