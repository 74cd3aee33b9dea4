package usecase

import (
	"context"
	"errors"
	"testing"

	"github-bounty-agent/internal/criteria"
	"github-bounty-agent/internal/criteria/repository/memory"
	"github-bounty-agent/pkg/log"
)

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.New(), "lockmeup", log.NewNopLogger())

	err := uc.Set(ctx, criteria.SetInput{Repo: "Octo/Hello", Criteria: "Tests required.", Secret: "lockmeup"})
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := uc.Get(ctx, "octo/hello")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Tests required." {
		t.Errorf("expected stored criteria, got %q", got)
	}

	got, _ = uc.Get(ctx, "octo/unknown")
	if got != "" {
		t.Errorf("expected empty criteria, got %q", got)
	}
}

func TestSet_Errors(t *testing.T) {
	ctx := context.Background()
	uc := New(memory.New(), "lockmeup", log.NewNopLogger())

	tests := []struct {
		name  string
		input criteria.SetInput
		want  error
	}{
		{"missing repo", criteria.SetInput{Criteria: "c", Secret: "lockmeup"}, criteria.ErrMissingFields},
		{"missing criteria", criteria.SetInput{Repo: "a/b", Secret: "lockmeup"}, criteria.ErrMissingFields},
		{"missing secret", criteria.SetInput{Repo: "a/b", Criteria: "c"}, criteria.ErrMissingFields},
		{"wrong secret", criteria.SetInput{Repo: "a/b", Criteria: "c", Secret: "nope"}, criteria.ErrInvalidSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := uc.Set(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSet_NoConfiguredSecretRejectsAll(t *testing.T) {
	uc := New(memory.New(), "", log.NewNopLogger())
	err := uc.Set(context.Background(), criteria.SetInput{Repo: "a/b", Criteria: "c", Secret: "anything"})
	if !errors.Is(err, criteria.ErrInvalidSecret) {
		t.Errorf("expected ErrInvalidSecret, got %v", err)
	}
}
