package usecase

import (
	"strings"

	"github-bounty-agent/internal/model"
)

const systemInstruction = "You are a strict JSON API. Only output valid JSON per the schema."

// buildPrompt lays the review context out in a fixed order so identical
// inputs produce identical prompts.
func buildPrompt(diff, criteria string, m model.PullRequestMetadata) string {
	description := m.Body
	if strings.TrimSpace(description) == "" {
		description = "(no description)"
	}

	return strings.Join([]string{
		"You are a senior code reviewer.",
		"Review the following GitHub pull request diff against the maintainer's criteria.",
		"Return ONLY valid JSON with the exact structure:",
		"{",
		`  "approved": boolean,`,
		`  "score": number,`,
		`  "summary": string,`,
		`  "issues": string[],`,
		`  "suggestions": string[]`,
		"}",
		"Do not include markdown, commentary, or extra keys.",
		"---",
		"Title: " + m.Title,
		"Contributor: " + m.Contributor,
		"Base Branch: " + m.BaseBranch,
		"Head Branch: " + m.HeadBranch,
		"Description: " + description,
		"---",
		"Criteria: " + criteria,
		"---",
		"Diff:",
		diff,
	}, "\n")
}
