package comment

import (
	"context"

	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/log"
)

// Publisher posts agent output back to GitHub. Posting is best-effort:
// failures are logged and never returned, so nothing upstream rolls back
// because a comment could not be written.
type Publisher interface {
	// PostReview posts the formatted verdict on a pull request.
	PostReview(ctx context.Context, repoFullName string, prNumber int, verdict review.Verdict, token string, extra ReviewExtra)

	// PostPayoutResult posts a payout outcome message.
	PostPayoutResult(ctx context.Context, repoFullName string, prNumber int, message, token string)

	// PostIssueLink tells an issue that a pull request references it.
	PostIssueLink(ctx context.Context, repoFullName string, issueNumber, prNumber int, token string)
}

type service struct {
	gh github.IGitHub
	l  log.Logger
}

// New creates a Publisher backed by the GitHub client.
func New(gh github.IGitHub, l log.Logger) Publisher {
	return &service{gh: gh, l: l}
}

func (s *service) PostReview(ctx context.Context, repoFullName string, prNumber int, verdict review.Verdict, token string, extra ReviewExtra) {
	s.post(ctx, "PostReview", repoFullName, prNumber, FormatReview(verdict, extra), token)
}

func (s *service) PostPayoutResult(ctx context.Context, repoFullName string, prNumber int, message, token string) {
	s.post(ctx, "PostPayoutResult", repoFullName, prNumber, message, token)
}

func (s *service) PostIssueLink(ctx context.Context, repoFullName string, issueNumber, prNumber int, token string) {
	s.post(ctx, "PostIssueLink", repoFullName, issueNumber, FormatIssueLink(prNumber), token)
}

func (s *service) post(ctx context.Context, op, repoFullName string, number int, body, token string) {
	if err := s.gh.CreateComment(ctx, repoFullName, number, body, token); err != nil {
		s.l.Warnf(ctx, "comment.%s: %s#%d: %v", op, repoFullName, number, err)
		return
	}
	s.l.Debugf(ctx, "comment.%s: posted on %s#%d", op, repoFullName, number)
}
