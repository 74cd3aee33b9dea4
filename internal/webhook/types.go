package webhook

import "github-bounty-agent/internal/model"

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for signature verification
	AllowedIPs      []string // IP allowlist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}

// Outcome statuses returned to GitHub.
const (
	StatusIgnored          = "ignored"
	StatusProcessed        = "processed"
	StatusProcessedSync    = "processed-sync"
	StatusProcessedMerge   = "processed-merge"
	StatusNoBountyForMerge = "no-bounty-for-merge"
	StatusSkippedNoWallet  = "skipped-no-wallet"
)

// IntentKind tags an Intent.
type IntentKind int

const (
	IntentIgnore IntentKind = iota
	IntentBountySync
	IntentIssueLink
	IntentReviewRequest
	IntentMergePayout
)

func (k IntentKind) String() string {
	switch k {
	case IntentBountySync:
		return "bounty-sync"
	case IntentIssueLink:
		return "issue-link"
	case IntentReviewRequest:
		return "review-request"
	case IntentMergePayout:
		return "merge-payout"
	default:
		return "ignore"
	}
}

// Intent is the classified action for one event. Only the fields of the
// active Kind are set.
type Intent struct {
	Kind IntentKind

	// BountySync
	TargetNumber int
	IsIssue      bool
	Amount       string

	// IssueLink, ReviewRequest, MergePayout
	PRNumber int

	// IssueLink
	ReferencedIssues []int

	// ReviewRequest
	DiffURL  string
	Metadata model.PullRequestMetadata
}

// ProcessOutput is the webhook response body on success.
type ProcessOutput struct {
	Status string `json:"status"`
}
