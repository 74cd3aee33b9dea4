package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github-bounty-agent/internal/review"
)

type rawVerdict struct {
	Approved    *bool            `json:"approved"`
	Score       *json.RawMessage `json:"score"`
	Summary     *string          `json:"summary"`
	Issues      *[]string        `json:"issues"`
	Suggestions *[]string        `json:"suggestions"`
}

// parseVerdict decodes the model answer. It tries the whole text first and
// then the span from the first '{' to the last '}'.
func parseVerdict(raw string) (review.Verdict, error) {
	trimmed := strings.TrimSpace(raw)

	v, err := decodeVerdict(trimmed)
	if err == nil {
		return v, nil
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first >= 0 && last > first {
		v, err2 := decodeVerdict(trimmed[first : last+1])
		if err2 == nil {
			return v, nil
		}
		err = err2
	}
	return review.Verdict{}, fmt.Errorf("%w: %v", review.ErrMalformedVerdict, err)
}

func decodeVerdict(text string) (review.Verdict, error) {
	var rv rawVerdict
	if err := json.Unmarshal([]byte(text), &rv); err != nil {
		return review.Verdict{}, err
	}

	switch {
	case rv.Approved == nil:
		return review.Verdict{}, fmt.Errorf("missing approved")
	case rv.Score == nil:
		return review.Verdict{}, fmt.Errorf("missing score")
	case rv.Summary == nil:
		return review.Verdict{}, fmt.Errorf("missing summary")
	case rv.Issues == nil:
		return review.Verdict{}, fmt.Errorf("missing issues")
	case rv.Suggestions == nil:
		return review.Verdict{}, fmt.Errorf("missing suggestions")
	}

	score, err := parseScore(*rv.Score)
	if err != nil {
		return review.Verdict{}, err
	}

	return review.Verdict{
		Approved:    *rv.Approved,
		Score:       score,
		Summary:     *rv.Summary,
		Issues:      nonNil(*rv.Issues),
		Suggestions: nonNil(*rv.Suggestions),
	}, nil
}

// parseScore accepts a JSON number or numeric string, rounds it and clamps
// it to 0..100.
func parseScore(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)

	var f float64
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, fmt.Errorf("score: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("score is not numeric: %q", s)
		}
		f = v
	} else if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("score is not numeric: %s", raw)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("score is not finite")
	}
	f = math.Round(f)
	if f < 0 {
		f = 0
	}
	if f > 100 {
		f = 100
	}
	return int(f), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
