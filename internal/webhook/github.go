package webhook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github-bounty-agent/internal/model"
)

// GitHubWebhookParser parses GitHub webhook payloads
type GitHubWebhookParser struct {
	now func() time.Time
}

func NewGitHubParser() *GitHubWebhookParser {
	return &GitHubWebhookParser{now: time.Now}
}

type ghUser struct {
	Login string `json:"login"`
}

type ghRef struct {
	Ref string `json:"ref"`
}

type ghRepository struct {
	FullName string `json:"full_name"`
}

type ghPullRequest struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	User    ghUser `json:"user"`
	Base    ghRef  `json:"base"`
	Head    ghRef  `json:"head"`
	DiffURL string `json:"diff_url"`
	Merged  bool   `json:"merged"`
}

type ghIssue struct {
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	User        ghUser    `json:"user"`
	PullRequest *struct{} `json:"pull_request"`
}

type ghComment struct {
	Body              string `json:"body"`
	User              ghUser `json:"user"`
	AuthorAssociation string `json:"author_association"`
}

type ghPayload struct {
	Action      string         `json:"action"`
	Number      int            `json:"number"`
	Repository  *ghRepository  `json:"repository"`
	PullRequest *ghPullRequest `json:"pull_request"`
	Issue       *ghIssue       `json:"issue"`
	Comment     *ghComment     `json:"comment"`
}

// Parse decodes one delivery. Unknown event types parse to an event the
// classifier ignores; a body that is not JSON or names no repository is
// ErrMalformedPayload.
func (p *GitHubWebhookParser) Parse(eventType, deliveryID string, payload []byte) (*model.WebhookEvent, error) {
	var raw ghPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if raw.Repository == nil || strings.TrimSpace(raw.Repository.FullName) == "" {
		return nil, fmt.Errorf("%w: repository.full_name missing", ErrMalformedPayload)
	}

	event := &model.WebhookEvent{
		EventType:    model.EventType(eventType),
		Action:       raw.Action,
		DeliveryID:   deliveryID,
		RepoFullName: raw.Repository.FullName,
		ReceivedAt:   p.now(),
	}

	switch event.EventType {
	case model.EventPullRequest:
		if raw.PullRequest == nil {
			return nil, fmt.Errorf("%w: pull_request missing", ErrMalformedPayload)
		}
		pr := raw.PullRequest
		event.Number = pr.Number
		if event.Number == 0 {
			event.Number = raw.Number
		}
		event.IsPullRequest = true
		event.Title = pr.Title
		event.Body = pr.Body
		event.Contributor = pr.User.Login
		event.BaseBranch = pr.Base.Ref
		event.HeadBranch = pr.Head.Ref
		event.DiffURL = pr.DiffURL
		event.Merged = pr.Merged

	case model.EventIssues, model.EventIssueComment:
		if raw.Issue == nil {
			return nil, fmt.Errorf("%w: issue missing", ErrMalformedPayload)
		}
		event.Number = raw.Issue.Number
		event.IsPullRequest = raw.Issue.PullRequest != nil
		event.Title = raw.Issue.Title
		event.Body = raw.Issue.Body
		event.Contributor = raw.Issue.User.Login
		if raw.Comment != nil {
			event.CommentBody = raw.Comment.Body
			event.AuthorAssociation = raw.Comment.AuthorAssociation
		}
	}

	return event, nil
}
