package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"github-bounty-agent/internal/comment"
	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	"github-bounty-agent/pkg/nearagent"
)

type fakeBackend struct {
	mu       sync.Mutex
	bt       *backend.BountyAndToken
	btErr    error
	attached []backend.AttachBountyRequest
	attachFn func() error
	paid     []string
	lookups  int
}

func (f *fakeBackend) GetBountyAndToken(ctx context.Context, owner, repo string, pr int) (*backend.BountyAndToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.btErr != nil {
		return nil, f.btErr
	}
	return f.bt, nil
}

func (f *fakeBackend) AttachBounty(ctx context.Context, req backend.AttachBountyRequest) (*backend.Bounty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attached = append(f.attached, req)
	if f.attachFn != nil {
		if err := f.attachFn(); err != nil {
			return nil, err
		}
	}
	return &backend.Bounty{ID: "new", Amount: backend.Decimal(req.Amount), Status: backend.StatusOpen}, nil
}

func (f *fakeBackend) MarkPaid(ctx context.Context, id string) (*backend.Bounty, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paid = append(f.paid, id)
	if f.bt != nil && f.bt.Bounty != nil && f.bt.Bounty.ID == id {
		f.bt.Bounty.Status = backend.StatusPaid
	}
	return &backend.Bounty{ID: id, Status: backend.StatusPaid}, nil
}

func (f *fakeBackend) RegisterRepo(ctx context.Context, req backend.RegisterRepoRequest) error {
	return nil
}

type fakeGitHub struct {
	diff      string
	diffCalls int
	comments  []github.Comment
}

func (f *fakeGitHub) FetchDiff(ctx context.Context, diffURL, token string) (string, error) {
	f.diffCalls++
	return f.diff, nil
}

func (f *fakeGitHub) CreateComment(ctx context.Context, repo string, number int, body, token string) error {
	return nil
}

func (f *fakeGitHub) ListComments(ctx context.Context, repo string, number int, token string) ([]github.Comment, error) {
	return f.comments, nil
}

type fakeReview struct {
	verdict review.Verdict
	err     error
	inputs  []review.Input
}

func (f *fakeReview) Review(ctx context.Context, in review.Input) (review.Verdict, error) {
	f.inputs = append(f.inputs, in)
	return f.verdict, f.err
}

type postedReview struct {
	repo    string
	pr      int
	verdict review.Verdict
	token   string
	extra   comment.ReviewExtra
}

type fakePublisher struct {
	mu      sync.Mutex
	reviews []postedReview
	payouts []string
	links   []int
}

func (f *fakePublisher) PostReview(ctx context.Context, repo string, pr int, v review.Verdict, token string, extra comment.ReviewExtra) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, postedReview{repo, pr, v, token, extra})
}

func (f *fakePublisher) PostPayoutResult(ctx context.Context, repo string, pr int, message, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payouts = append(f.payouts, message)
}

func (f *fakePublisher) PostIssueLink(ctx context.Context, repo string, issue, pr int, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, issue)
}

type fakeAgent struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeAgent) View(ctx context.Context, method string, args any) (json.RawMessage, error) {
	return json.RawMessage(`"0"`), nil
}

func (f *fakeAgent) Call(ctx context.Context, method string, args any) (*nearagent.CallResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &nearagent.CallResult{TxHash: "9xTx"}, nil
}

func (f *fakeAgent) AccountID(ctx context.Context) (string, error) {
	return "agent.testnet", nil
}
