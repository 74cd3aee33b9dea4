package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/internal/ledger/repository"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/near"
	"github-bounty-agent/pkg/nearagent"
)

const historyLimit = 100

type registerArgs struct {
	RepoID           string `json:"repo_id"`
	MaintainerNearID string `json:"maintainer_id"`
}

func (uc *implUseCase) Balance(ctx context.Context, repo string) (bounty.Balance, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return bounty.Balance{}, bounty.ErrMissingFields
	}

	amount, err := uc.chainBounty(ctx, repo)
	if errors.Is(err, bounty.ErrNoBountyAmount) {
		amount, err = "0", nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.Balance: %s: %v", repo, err)
		return bounty.Balance{}, err
	}
	return bounty.Balance{Repo: repo, Amount: amount, Currency: bounty.Currency}, nil
}

func (uc *implUseCase) RegisterRepo(ctx context.Context, input bounty.RegisterRepoInput) error {
	repo := strings.TrimSpace(input.Repo)
	maintainer := strings.TrimSpace(input.MaintainerNearID)
	if repo == "" || maintainer == "" {
		return bounty.ErrMissingFields
	}
	if !uc.validSecret(input.Secret) {
		uc.l.Warnf(ctx, "bounty.usecase.RegisterRepo: rejected registration of %s: invalid secret", repo)
		return bounty.ErrInvalidSecret
	}
	if !near.ValidAccountID(maintainer, uc.cfg.Network) {
		return fmt.Errorf("%w: %q", bounty.ErrInvalidWallet, maintainer)
	}

	res, err := uc.agent.Call(ctx, nearagent.MethodRegisterRepo, registerArgs{RepoID: repo, MaintainerNearID: maintainer})
	if err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.RegisterRepo: agent.Call: %v", err)
		return fmt.Errorf("%w: %v", bounty.ErrRegisterFailed, err)
	}
	uc.l.Infof(ctx, "bounty.usecase.RegisterRepo: %s registered to %s (tx %s)", repo, maintainer, res.TxHash)

	if input.NotifyBackend && uc.backend != nil {
		req := backend.RegisterRepoRequest{Repo: repo, MaintainerNearID: maintainer}
		if err := uc.backend.RegisterRepo(ctx, req); err != nil {
			uc.l.Warnf(ctx, "bounty.usecase.RegisterRepo: backend.RegisterRepo: %v", err)
		}
	}
	return nil
}

func (uc *implUseCase) History(ctx context.Context, repo string) ([]ledger.PayoutAttempt, error) {
	items, err := uc.ledger.List(ctx, repository.ListOptions{Repo: strings.TrimSpace(repo), Limit: historyLimit})
	if err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.History: ledger.List: %v", err)
		return nil, err
	}
	return items, nil
}

func (uc *implUseCase) Stats(ctx context.Context) (ledger.Stats, error) {
	st, err := uc.ledger.Stats(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.Stats: ledger.Stats: %v", err)
		return ledger.Stats{}, err
	}
	return st, nil
}
