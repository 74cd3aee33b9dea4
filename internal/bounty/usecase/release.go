package usecase

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/ledger"
	"github-bounty-agent/pkg/near"
	"github-bounty-agent/pkg/nearagent"

	"github.com/google/uuid"
)

type releaseArgs struct {
	RepoID    string `json:"repo_id"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

type repoArgs struct {
	RepoID string `json:"repo_id"`
}

func (uc *implUseCase) ManualRelease(ctx context.Context, input bounty.ManualReleaseInput) (bounty.ReleaseOutput, error) {
	in := input.ReleaseInput
	if strings.TrimSpace(in.RepoFullName) == "" || strings.TrimSpace(in.ContributorWallet) == "" || in.PRNumber <= 0 || input.Secret == "" {
		return bounty.ReleaseOutput{}, bounty.ErrMissingFields
	}
	if !uc.validSecret(input.Secret) {
		return bounty.ReleaseOutput{}, bounty.ErrInvalidSecret
	}
	return uc.Release(ctx, in)
}

func (uc *implUseCase) validSecret(secret string) bool {
	return uc.cfg.MaintainerSecret != "" && secret != "" &&
		subtle.ConstantTimeCompare([]byte(secret), []byte(uc.cfg.MaintainerSecret)) == 1
}

func (uc *implUseCase) Release(ctx context.Context, input bounty.ReleaseInput) (bounty.ReleaseOutput, error) {
	repo := strings.TrimSpace(input.RepoFullName)
	wallet := strings.TrimSpace(input.ContributorWallet)
	if repo == "" || wallet == "" || input.PRNumber <= 0 {
		return bounty.ReleaseOutput{}, bounty.ErrMissingFields
	}
	if !near.ValidAccountID(wallet, uc.cfg.Network) {
		return bounty.ReleaseOutput{}, fmt.Errorf("%w: %q", bounty.ErrInvalidWallet, wallet)
	}

	key := releaseKey(repo, input.PRNumber)
	if !uc.acquire(key) {
		uc.l.Warnf(ctx, "bounty.usecase.Release: %s already in flight", key)
		return bounty.ReleaseOutput{}, bounty.ErrReleaseInProgress
	}
	defer uc.release(key)

	settled, err := uc.ledger.Settled(ctx, repo, input.PRNumber)
	if err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.Release: ledger.Settled: %v", err)
		return bounty.ReleaseOutput{}, err
	}
	if settled != nil {
		if settled.Success {
			uc.l.Infof(ctx, "bounty.usecase.Release: %s already paid, skipping", key)
			return bounty.ReleaseOutput{}, bounty.ErrAlreadyPaid
		}
		uc.l.Warnf(ctx, "bounty.usecase.Release: %s has unconfirmed attempt %s, skipping", key, settled.ID)
		return bounty.ReleaseOutput{}, bounty.ErrPayoutUnconfirmed
	}

	attempt := ledger.PayoutAttempt{
		ID:                uuid.NewString(),
		Repo:              repo,
		PRNumber:          input.PRNumber,
		ContributorWallet: wallet,
	}

	out, releaseErr := uc.releaseOnChain(ctx, repo, wallet, input.Amount)
	attempt.Amount = out.Amount
	attempt.Success = out.Success
	attempt.Unconfirmed = out.Unconfirmed
	attempt.TxHash = out.TxHash
	attempt.Error = out.Error
	attempt.Timestamp = uc.now().UTC()

	if err := uc.ledger.Append(ctx, attempt); err != nil {
		uc.l.Errorf(ctx, "bounty.usecase.Release: ledger.Append: %v", err)
	}

	token := input.Token
	if token == "" {
		token = uc.cfg.FallbackToken
	}

	if releaseErr != nil {
		msg := comment.FormatPayoutFailure(out.Error)
		if out.Unconfirmed {
			uc.l.Errorf(ctx, "bounty.usecase.Release: %s to %s unconfirmed, reconcile attempt %s by hand: %v", key, wallet, attempt.ID, releaseErr)
			msg = comment.FormatPayoutUnconfirmed(out.Amount)
		} else {
			uc.l.Errorf(ctx, "bounty.usecase.Release: %s to %s failed: %v", key, wallet, releaseErr)
		}
		uc.comment(ctx, repo, input.PRNumber, msg, token)
		return out, fmt.Errorf("%w: %v", bounty.ErrPayoutFailed, releaseErr)
	}

	uc.l.Infof(ctx, "bounty.usecase.Release: released %s NEAR to %s for %s (tx %s)", out.Amount, wallet, key, out.TxHash)
	if input.BountyID != "" && uc.backend != nil {
		if _, err := uc.backend.MarkPaid(ctx, input.BountyID); err != nil {
			uc.l.Warnf(ctx, "bounty.usecase.Release: backend.MarkPaid %s: %v", input.BountyID, err)
		}
	}
	uc.comment(ctx, repo, input.PRNumber, comment.FormatPayoutSuccess(out.Amount, out.TxHash), token)
	return out, nil
}

// releaseOnChain resolves the amount and submits release_bounty. The
// returned output is filled for both outcomes.
func (uc *implUseCase) releaseOnChain(ctx context.Context, repo, wallet, amount string) (bounty.ReleaseOutput, error) {
	out := bounty.ReleaseOutput{Amount: strings.TrimSpace(amount)}

	if out.Amount == "" {
		resolved, err := uc.chainBounty(ctx, repo)
		if err != nil {
			out.Error = err.Error()
			return out, err
		}
		out.Amount = resolved
	}

	yocto, err := near.ToYocto(out.Amount)
	if err != nil {
		out.Error = err.Error()
		return out, err
	}

	args := releaseArgs{RepoID: repo, Recipient: wallet, Amount: yocto}
	res, err := uc.callWithRetry(ctx, nearagent.MethodReleaseBounty, args)
	if err != nil {
		out.Error = err.Error()
		var ce *nearagent.CallError
		if errors.As(err, &ce) {
			out.TxHash = ce.TxHash
			out.Unconfirmed = ce.Unconfirmed
		}
		return out, err
	}

	out.Success = true
	out.TxHash = res.TxHash
	return out, nil
}

// callWithRetry makes up to cfg.Attempts tries, waiting attempt*RetryDelay
// between them. A call that reached the chain is never retried.
func (uc *implUseCase) callWithRetry(ctx context.Context, method string, args any) (*nearagent.CallResult, error) {
	var lastErr error
	for attempt := 1; attempt <= uc.cfg.Attempts; attempt++ {
		res, err := uc.agent.Call(ctx, method, args)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if nearagent.IsBroadcast(err) || ctx.Err() != nil {
			break
		}
		uc.l.Warnf(ctx, "bounty.usecase.callWithRetry: %s attempt %d/%d: %v", method, attempt, uc.cfg.Attempts, err)
		if attempt < uc.cfg.Attempts {
			if werr := uc.wait(ctx, time.Duration(attempt)*uc.cfg.RetryDelay); werr != nil {
				break
			}
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// chainBounty reads the repository bounty pool and returns it in NEAR.
func (uc *implUseCase) chainBounty(ctx context.Context, repo string) (string, error) {
	raw, err := uc.agent.View(ctx, nearagent.MethodGetBounty, repoArgs{RepoID: repo})
	if err != nil {
		return "", fmt.Errorf("get_bounty: %w", err)
	}
	yocto, err := decodeYocto(raw)
	if err != nil {
		return "", fmt.Errorf("get_bounty: %w", err)
	}
	if near.IsZeroYocto(yocto) {
		return "", bounty.ErrNoBountyAmount
	}
	return near.FromYocto(yocto)
}

// decodeYocto accepts "123", 123 or {"amount": "123"}.
func decodeYocto(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	var obj struct {
		Amount json.RawMessage `json:"amount"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && len(obj.Amount) > 0 && string(obj.Amount) != "null" {
		return decodeYocto(obj.Amount)
	}
	if string(raw) == "null" || len(raw) == 0 {
		return "0", nil
	}
	return "", fmt.Errorf("unexpected bounty shape %s", string(raw))
}

func (uc *implUseCase) comment(ctx context.Context, repo string, prNumber int, message, token string) {
	if token == "" || uc.publisher == nil {
		uc.l.Warnf(ctx, "bounty.usecase.comment: no token for %s#%d, result comment skipped", repo, prNumber)
		return
	}
	uc.publisher.PostPayoutResult(ctx, repo, prNumber, message, token)
}
