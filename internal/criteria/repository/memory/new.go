package memory

import (
	"context"
	"strings"
	"sync"

	"github-bounty-agent/internal/criteria/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	items map[string]string
}

// New creates an empty in-memory criteria store.
func New() repository.Repository {
	return &implRepository{items: make(map[string]string)}
}

func (r *implRepository) Get(ctx context.Context, repo string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[strings.ToLower(repo)]
	return v, ok, nil
}

func (r *implRepository) Set(ctx context.Context, repo, criteria string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[strings.ToLower(repo)] = criteria
	return nil
}
