package http

import (
	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/criteria"
	"github-bounty-agent/pkg/response"
)

// Get godoc
// @Summary     Get review criteria for a repository
// @Tags        Criteria
// @Produce     json
// @Param       repo query string true "Repository full name" example(octocat/hello-world)
// @Success     200 {object} getResp
// @Failure     400 {object} response.ErrResp "repo query parameter required"
// @Router      /api/criteria [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetReq(c)
	if err != nil {
		response.BadRequest(c, errRepoRequired.Error())
		return
	}

	value, err := h.uc.Get(ctx, req.Repo)
	if err != nil {
		h.l.Errorf(ctx, "criteria.delivery.Get: uc.Get: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newGetResp(req.Repo, value))
}

// Set godoc
// @Summary     Save review criteria for a repository
// @Tags        Criteria
// @Accept      json
// @Produce     json
// @Param       body body setReq true "Criteria and maintainer secret"
// @Success     200 {object} response.StatusResp
// @Failure     400 {object} response.ErrResp "Missing fields"
// @Failure     401 {object} response.ErrResp "Invalid secret"
// @Router      /api/criteria [POST]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetReq(c)
	if err != nil {
		response.BadRequest(c, criteria.ErrMissingFields.Error())
		return
	}

	if err := h.uc.Set(ctx, req.toInput()); err != nil {
		code, msg := h.mapError(err)
		if code >= 500 {
			h.l.Errorf(ctx, "criteria.delivery.Set: uc.Set: %v", err)
		}
		response.Error(c, code, msg)
		return
	}

	response.Status(c, "saved")
}
