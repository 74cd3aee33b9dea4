package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

var errRepoRequired = errors.New("repo query parameter required")

func (h *handler) processGetReq(c *gin.Context) (getReq, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Repo) == "" {
		return req, errRepoRequired
	}
	return req, nil
}

func (h *handler) processSetReq(c *gin.Context) (setReq, error) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
