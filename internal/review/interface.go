package review

import "context"

// UseCase reviews a pull request diff.
type UseCase interface {
	// Review returns a complete Verdict or an error. It never substitutes a
	// default verdict for an unparsable model answer.
	Review(ctx context.Context, input Input) (Verdict, error)
}
