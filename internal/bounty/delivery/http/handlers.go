package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/pkg/response"
)

// agentSecretHeader marks requests that come from the backend.
const agentSecretHeader = "x-agent-secret"

// History godoc
// @Summary     List payout attempts
// @Tags        Bounty
// @Produce     json
// @Param       repo query string false "Repository full name"
// @Success     200 {object} historyResp
// @Router      /api/bounty/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	var req historyReq
	_ = c.ShouldBindQuery(&req)

	items, err := h.uc.History(ctx, req.Repo)
	if err != nil {
		h.l.Errorf(ctx, "bounty.delivery.History: uc.History: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, newHistoryResp(items))
}

// Balance godoc
// @Summary     Get the on-chain bounty pool of a repository
// @Tags        Bounty
// @Produce     json
// @Param       owner path string true "Repository owner"
// @Param       repo  path string true "Repository name"
// @Success     200 {object} bounty.Balance
// @Failure     500 {object} response.ErrResp
// @Router      /api/bounty/{owner}/{repo} [GET]
func (h *handler) Balance(c *gin.Context) {
	ctx := c.Request.Context()
	repo := c.Param("owner") + "/" + c.Param("repo")

	b, err := h.uc.Balance(ctx, repo)
	if err != nil {
		h.l.Errorf(ctx, "bounty.delivery.Balance: uc.Balance: %v", err)
		response.InternalError(c, err)
		return
	}
	response.OK(c, b)
}

// Release godoc
// @Summary     Release a bounty manually
// @Tags        Bounty
// @Accept      json
// @Produce     json
// @Param       body body releaseReq true "Release request with maintainer secret"
// @Success     200 {object} bounty.ReleaseOutput
// @Failure     400 {object} response.ErrResp "Missing fields"
// @Failure     401 {object} response.ErrResp "Invalid secret"
// @Failure     500 {object} bounty.ReleaseOutput
// @Router      /api/bounty/release [POST]
func (h *handler) Release(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReleaseReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.ManualRelease(ctx, req.toInput())
	if err != nil {
		code := h.mapError(err)
		switch code {
		case http.StatusBadRequest:
			response.BadRequest(c, err.Error())
		case http.StatusUnauthorized:
			response.Unauthorized(c, "Invalid secret")
		default:
			if out.Error == "" {
				out.Error = err.Error()
			}
			c.JSON(code, out)
		}
		return
	}
	c.JSON(http.StatusOK, out)
}

// RegisterRepo godoc
// @Summary     Register a repository with the bounty contract
// @Tags        Bounty
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Repository, maintainer account and maintainer secret"
// @Param       x-agent-secret header string false "Agent secret, sent by the backend instead of the body secret"
// @Success     200 {object} successResp
// @Failure     400 {object} response.ErrResp "Missing fields"
// @Failure     401 {object} response.ErrResp "Invalid secret"
// @Failure     500 {object} successResp
// @Router      /api/repo/register [POST]
func (h *handler) RegisterRepo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	err = h.uc.RegisterRepo(ctx, req.toInput(strings.TrimSpace(c.GetHeader(agentSecretHeader))))
	if err != nil {
		switch code := h.mapError(err); code {
		case http.StatusBadRequest:
			response.BadRequest(c, err.Error())
		case http.StatusUnauthorized:
			response.Unauthorized(c, "Invalid secret")
		default:
			c.JSON(code, successResp{Success: false, Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, successResp{Success: true})
}
