package review

import "github-bounty-agent/internal/model"

// Verdict is the reviewer's structured output. A Verdict is only ever
// produced fully formed.
type Verdict struct {
	Approved    bool     `json:"approved"`
	Score       int      `json:"score"`
	Summary     string   `json:"summary"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// Input is one review request.
type Input struct {
	Diff         string
	RepoFullName string
	Metadata     model.PullRequestMetadata

	// Criteria overrides stored and default criteria when non-empty.
	Criteria string
}
