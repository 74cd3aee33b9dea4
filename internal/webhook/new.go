package webhook

import (
	pkgLog "github-bounty-agent/pkg/log"
)

type Handler struct {
	uc           UseCase
	security     *SecurityValidator
	githubParser *GitHubWebhookParser
	l            pkgLog.Logger
}

func NewHandler(
	uc UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		uc:           uc,
		security:     NewSecurityValidator(securityConfig),
		githubParser: NewGitHubParser(),
		l:            l,
	}
}
