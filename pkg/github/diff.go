package github

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// FetchDiff downloads diffURL with the diff media type.
func (g *githubImpl) FetchDiff(ctx context.Context, diffURL, token string) (string, error) {
	c, err := g.client(ctx, token)
	if err != nil {
		return "", err
	}

	req, err := c.NewRequest(http.MethodGet, diffURL, nil)
	if err != nil {
		return "", fmt.Errorf("github: build diff request: %w", err)
	}
	req.Header.Set("Accept", DiffMediaType)

	var buf bytes.Buffer
	if _, err := c.Do(ctx, req, &buf); err != nil {
		return "", fmt.Errorf("github: fetch diff: %w", err)
	}
	return buf.String(), nil
}

// TruncateDiff caps diff at limit characters and appends a marker when it
// cuts. It reports whether truncation happened.
func TruncateDiff(diff string, limit int) (string, bool) {
	total := utf8.RuneCountInString(diff)
	if total <= limit {
		return diff, false
	}

	cut, n := 0, 0
	for i := range diff {
		if n == limit {
			cut = i
			break
		}
		n++
	}
	return diff[:cut] + TruncationMarker(limit, total), true
}

// TruncationMarker is appended to a truncated diff.
func TruncationMarker(limit, total int) string {
	return fmt.Sprintf("\n\n[diff truncated: showing first %d of %d characters]\n", limit, total)
}
