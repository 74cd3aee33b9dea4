package http

import (
	"errors"
	"net/http"

	"github-bounty-agent/internal/criteria"
)

// mapError translates criteria errors into a status code and message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, criteria.ErrMissingFields):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, criteria.ErrInvalidSecret):
		return http.StatusUnauthorized, "Invalid secret"
	default:
		return http.StatusInternalServerError, "Failed to save criteria"
	}
}
