package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"github-bounty-agent/internal/criteria"
)

func (uc *implUseCase) Get(ctx context.Context, repo string) (string, error) {
	v, _, err := uc.repo.Get(ctx, strings.TrimSpace(repo))
	if err != nil {
		uc.l.Errorf(ctx, "criteria.usecase.Get: repo.Get: %v", err)
		return "", err
	}
	return v, nil
}

func (uc *implUseCase) Set(ctx context.Context, input criteria.SetInput) error {
	repo := strings.TrimSpace(input.Repo)
	if repo == "" || strings.TrimSpace(input.Criteria) == "" || input.Secret == "" {
		return criteria.ErrMissingFields
	}
	if uc.secret == "" || subtle.ConstantTimeCompare([]byte(input.Secret), []byte(uc.secret)) != 1 {
		return criteria.ErrInvalidSecret
	}

	if err := uc.repo.Set(ctx, repo, input.Criteria); err != nil {
		uc.l.Errorf(ctx, "criteria.usecase.Set: repo.Set: %v", err)
		return err
	}
	uc.l.Infof(ctx, "criteria.usecase.Set: criteria saved for %s", repo)
	return nil
}
