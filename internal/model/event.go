package model

import "time"

// EventType is the value of the x-github-event header.
type EventType string

const (
	EventPullRequest  EventType = "pull_request"
	EventIssues       EventType = "issues"
	EventIssueComment EventType = "issue_comment"
)

// Recognized actions.
const (
	ActionOpened      = "opened"
	ActionSynchronize = "synchronize"
	ActionReopened    = "reopened"
	ActionClosed      = "closed"
	ActionCreated     = "created"
)

// WebhookEvent is the normalized form of one GitHub delivery. It lives for
// the duration of a single request and is never persisted.
type WebhookEvent struct {
	EventType    EventType
	Action       string
	DeliveryID   string
	RepoFullName string

	// Number is the issue or pull request number the event is about.
	Number        int
	IsPullRequest bool
	Title         string
	Body          string
	Contributor   string
	BaseBranch    string
	HeadBranch    string
	DiffURL       string
	Merged        bool

	// CommentBody is set for issue_comment events.
	CommentBody       string
	AuthorAssociation string

	ReceivedAt time.Time
}

// PullRequestMetadata is the subset of a pull request the reviewer sees.
type PullRequestMetadata struct {
	Number      int
	Title       string
	Body        string
	Contributor string
	BaseBranch  string
	HeadBranch  string
	DiffURL     string
}

// Complete reports whether every field the reviewer requires is present.
func (m PullRequestMetadata) Complete() bool {
	return m.Number > 0 && m.Title != "" && m.Contributor != "" &&
		m.BaseBranch != "" && m.HeadBranch != "" && m.DiffURL != ""
}

// Metadata extracts the pull request metadata of e.
func (e WebhookEvent) Metadata() PullRequestMetadata {
	return PullRequestMetadata{
		Number:      e.Number,
		Title:       e.Title,
		Body:        e.Body,
		Contributor: e.Contributor,
		BaseBranch:  e.BaseBranch,
		HeadBranch:  e.HeadBranch,
		DiffURL:     e.DiffURL,
	}
}
