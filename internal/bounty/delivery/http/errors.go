package http

import (
	"errors"
	"net/http"

	"github-bounty-agent/internal/bounty"
)

// mapError translates bounty errors into a status code.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, bounty.ErrMissingFields), errors.Is(err, bounty.ErrInvalidWallet):
		return http.StatusBadRequest
	case errors.Is(err, bounty.ErrInvalidSecret):
		return http.StatusUnauthorized
	case errors.Is(err, bounty.ErrAlreadyPaid), errors.Is(err, bounty.ErrReleaseInProgress),
		errors.Is(err, bounty.ErrPayoutUnconfirmed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
