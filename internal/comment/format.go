package comment

import (
	"fmt"
	"strings"

	"github-bounty-agent/internal/review"
)

const (
	reviewHeading = "## Bounty Agent Review"
	disclaimer    = "> Note: The AI does not close PRs. Maintainers decide whether to close or merge."
)

// ReviewExtra carries optional context appended to a review comment.
type ReviewExtra struct {
	BountyAmount  string
	DiffTruncated bool
}

// FormatReview renders a verdict as the review comment Markdown.
func FormatReview(v review.Verdict, extra ReviewExtra) string {
	status := "❌ Changes requested"
	if v.Approved {
		status = "✅ Approved"
	}

	lines := []string{
		reviewHeading,
		"**Status:** " + status,
		fmt.Sprintf("**Score:** %d/100", v.Score),
	}
	if extra.BountyAmount != "" {
		lines = append(lines, fmt.Sprintf("**Bounty:** %s NEAR", extra.BountyAmount))
	}

	lines = append(lines,
		"",
		"**Summary**",
		v.Summary,
		"",
		"**Issues**",
		bullets(v.Issues, "- No issues found."),
		"",
		"**Suggestions**",
		bullets(v.Suggestions, "- No suggestions."),
		"",
	)
	if extra.DiffTruncated {
		lines = append(lines, "> The diff was too large and was truncated before review.", "")
	}
	lines = append(lines, disclaimer)

	return strings.Join(lines, "\n")
}

// FormatPayoutSuccess is the comment for a confirmed payout.
func FormatPayoutSuccess(amount, txHash string) string {
	return fmt.Sprintf("✅ Bounty released: %s NEAR\nTx: %s", amount, txHash)
}

// FormatPayoutFailure is the comment for a payout that did not confirm.
func FormatPayoutFailure(reason string) string {
	if reason == "" {
		reason = "Unknown error"
	}
	return fmt.Sprintf("❌ Bounty release failed: %s", reason)
}

// FormatPayoutUnconfirmed is the comment for a transfer whose outcome the
// agent could not report.
func FormatPayoutUnconfirmed(amount string) string {
	return fmt.Sprintf("⚠️ Bounty release of %s NEAR was submitted but could not be confirmed. "+
		"No further payout will be attempted for this pull request until a maintainer checks the chain.", amount)
}

// FormatIssueLink is the cross-reference comment posted on a linked issue.
func FormatIssueLink(prNumber int) string {
	return fmt.Sprintf("🔗 Pull request #%d references this issue.", prNumber)
}

func bullets(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "- " + it
	}
	return strings.Join(out, "\n")
}
