package usecase

import (
	"context"
	"fmt"
	"strings"

	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/llmprovider"
)

func (uc *implUseCase) Review(ctx context.Context, input review.Input) (review.Verdict, error) {
	crit := uc.resolveCriteria(ctx, input)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Messages: []llmprovider.Message{
			{Role: "user", Content: buildPrompt(input.Diff, crit, input.Metadata)},
		},
		Temperature: temperature,
	})
	if err != nil {
		uc.l.Errorf(ctx, "review.usecase.Review: llm.GenerateContent: %v", err)
		return review.Verdict{}, fmt.Errorf("generate review: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return review.Verdict{}, review.ErrEmptyCompletion
	}

	verdict, err := parseVerdict(resp.Content)
	if err != nil {
		uc.l.Warnf(ctx, "review.usecase.Review: %s#%d: %v", input.RepoFullName, input.Metadata.Number, err)
		return review.Verdict{}, err
	}

	uc.l.Infof(ctx, "review.usecase.Review: %s#%d approved=%t score=%d",
		input.RepoFullName, input.Metadata.Number, verdict.Approved, verdict.Score)
	return verdict, nil
}

// resolveCriteria picks explicit, then stored, then default criteria.
func (uc *implUseCase) resolveCriteria(ctx context.Context, input review.Input) string {
	if strings.TrimSpace(input.Criteria) != "" {
		return input.Criteria
	}
	if uc.criteria != nil {
		stored, err := uc.criteria.Get(ctx, input.RepoFullName)
		if err != nil {
			uc.l.Warnf(ctx, "review.usecase.resolveCriteria: criteria.Get: %v", err)
		} else if strings.TrimSpace(stored) != "" {
			return stored
		}
	}
	return DefaultCriteria
}
