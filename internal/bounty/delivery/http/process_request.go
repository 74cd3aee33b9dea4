package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/bounty"
)

func (h *handler) processReleaseReq(c *gin.Context) (releaseReq, error) {
	var req releaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bounty.ErrMissingFields
	}
	if strings.TrimSpace(req.Repo) == "" || strings.TrimSpace(req.ContributorWallet) == "" || req.PRNumber <= 0 || req.Secret == "" {
		return req, bounty.ErrMissingFields
	}
	return req, nil
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bounty.ErrMissingFields
	}
	if strings.TrimSpace(req.Repo) == "" || strings.TrimSpace(req.MaintainerNearID) == "" {
		return req, bounty.ErrMissingFields
	}
	return req, nil
}
