package webhook

import (
	"regexp"
	"strconv"

	"github-bounty-agent/internal/model"
	"github-bounty-agent/pkg/near"
)

// MaxIssueRefs caps the issues one pull request can link.
const MaxIssueRefs = 10

var (
	bountyCmdRe = regexp.MustCompile(`/bounty\s+(\S+)`)
	issueRefRe  = regexp.MustCompile(`#(\d+)`)
)

// Classify maps an event to its primary intent. Side intents that run next
// to the primary one are returned by SideIntents.
func Classify(e model.WebhookEvent) Intent {
	switch e.EventType {
	case model.EventPullRequest:
		return classifyPullRequest(e)

	case model.EventIssueComment:
		if e.Action != model.ActionCreated {
			return Intent{Kind: IntentIgnore}
		}
		return bountySync(e, e.CommentBody)

	case model.EventIssues:
		if e.Action != model.ActionOpened {
			return Intent{Kind: IntentIgnore}
		}
		return bountySync(e, e.Body)
	}
	return Intent{Kind: IntentIgnore}
}

func classifyPullRequest(e model.WebhookEvent) Intent {
	switch e.Action {
	case model.ActionOpened, model.ActionSynchronize, model.ActionReopened:
		return Intent{
			Kind:     IntentReviewRequest,
			PRNumber: e.Number,
			DiffURL:  e.DiffURL,
			Metadata: e.Metadata(),
		}
	case model.ActionClosed:
		if e.Merged {
			return Intent{Kind: IntentMergePayout, PRNumber: e.Number}
		}
	}
	return Intent{Kind: IntentIgnore}
}

// bountySync reads the first /bounty command in text. A malformed amount is
// not coerced; the event is ignored instead.
func bountySync(e model.WebhookEvent, text string) Intent {
	m := bountyCmdRe.FindStringSubmatch(text)
	if m == nil {
		return Intent{Kind: IntentIgnore}
	}
	amount, err := near.ParseAmount(m[1])
	if err != nil {
		return Intent{Kind: IntentIgnore}
	}
	return Intent{
		Kind:         IntentBountySync,
		TargetNumber: e.Number,
		IsIssue:      !e.IsPullRequest,
		Amount:       amount,
	}
}

// SideIntents returns the fire-and-forget intents of e. Today that is the
// issue link of a newly opened pull request.
func SideIntents(e model.WebhookEvent) []Intent {
	if e.EventType != model.EventPullRequest || e.Action != model.ActionOpened {
		return nil
	}
	refs := IssueRefs(e.Body, e.Number)
	if len(refs) == 0 {
		return nil
	}
	return []Intent{{Kind: IntentIssueLink, PRNumber: e.Number, ReferencedIssues: refs}}
}

// IssueRefs returns the distinct #N references in body, in order of first
// appearance, excluding self. At most MaxIssueRefs are returned.
func IssueRefs(body string, self int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, m := range issueRefRe.FindAllStringSubmatch(body, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 || n == self || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == MaxIssueRefs {
			break
		}
	}
	return out
}
