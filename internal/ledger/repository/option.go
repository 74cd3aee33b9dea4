package repository

// ListOptions filters List. Results are always newest first.
type ListOptions struct {
	Repo  string
	Limit int
}
