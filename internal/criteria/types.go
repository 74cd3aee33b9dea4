package criteria

// SetInput is the input for UseCase.Set.
type SetInput struct {
	Repo     string
	Criteria string
	Secret   string
}
