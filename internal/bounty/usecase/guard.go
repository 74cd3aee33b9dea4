package usecase

import (
	"fmt"
	"strings"
)

func releaseKey(repo string, prNumber int) string {
	return fmt.Sprintf("%s#%d", strings.ToLower(repo), prNumber)
}

// acquire marks a release in flight. It returns false if one already is.
func (uc *implUseCase) acquire(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight.Contains(key) {
		return false
	}
	uc.inFlight.Add(key, struct{}{})
	return true
}

func (uc *implUseCase) release(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.inFlight.Remove(key)
}
