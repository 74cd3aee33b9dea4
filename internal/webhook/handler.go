package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/internal/bounty"
	"github-bounty-agent/internal/review"
	"github-bounty-agent/pkg/backend"
	"github-bounty-agent/pkg/github"
	pkgResponse "github-bounty-agent/pkg/response"
)

// maxPayloadBytes matches GitHub's delivery size cap.
const maxPayloadBytes = 25 << 20

const (
	headerSignature = "X-Hub-Signature-256"
	headerEvent     = "X-GitHub-Event"
	headerDelivery  = "X-GitHub-Delivery"
)

// HandleGitHubWebhook godoc
// @Summary     Receive a GitHub webhook
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-Hub-Signature-256 header string true "sha256=<hex HMAC of body>"
// @Param       X-GitHub-Event      header string true "pull_request, issues or issue_comment"
// @Success     200 {object} ProcessOutput
// @Failure     400 {object} response.ErrResp "Malformed payload"
// @Failure     401 {object} response.ErrResp "Invalid signature"
// @Failure     424 {object} response.ErrResp "No delegated token"
// @Failure     500 {object} response.ErrResp "Processing failed"
// @Router      /api/webhook [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: read body: %v", err)
		pkgResponse.BadRequest(c, ErrMalformedPayload.Error())
		return
	}

	if !h.security.Verify(body, c.GetHeader(headerSignature)) {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: signature verification failed from %s", c.ClientIP())
		pkgResponse.Unauthorized(c, "Invalid signature")
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: %v", err)
		pkgResponse.Error(c, http.StatusForbidden, "Forbidden")
		return
	}

	if err := h.security.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: %v", err)
		pkgResponse.Error(c, http.StatusTooManyRequests, "Rate limit exceeded")
		return
	}

	event, err := h.githubParser.Parse(c.GetHeader(headerEvent), c.GetHeader(headerDelivery), body)
	if err != nil {
		h.l.Warnf(ctx, "webhook.HandleGitHubWebhook: parse: %v", err)
		pkgResponse.BadRequest(c, err.Error())
		return
	}

	out, err := h.uc.Process(ctx, *event)
	if err != nil {
		code, msg := mapError(err)
		if code >= http.StatusInternalServerError {
			h.l.Errorf(ctx, "webhook.HandleGitHubWebhook: %s#%d: %v", event.RepoFullName, event.Number, err)
		}
		if code == http.StatusBadRequest {
			pkgResponse.BadRequest(c, err.Error())
			return
		}
		pkgResponse.ErrorWithDetails(c, code, msg, err.Error())
		return
	}

	pkgResponse.OK(c, out)
}

// mapError translates processing errors into a status code and message.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMalformedPayload), errors.Is(err, ErrIncompleteMetadata), errors.Is(err, github.ErrInvalidRepoName):
		return http.StatusBadRequest, ErrMalformedPayload.Error()
	case errors.Is(err, backend.ErrNoDelegatedToken):
		return http.StatusFailedDependency, "Repository has not granted GitHub access"
	case errors.Is(err, review.ErrMalformedVerdict), errors.Is(err, review.ErrEmptyCompletion):
		return http.StatusInternalServerError, "Review failed"
	case errors.Is(err, bounty.ErrPayoutFailed):
		return http.StatusInternalServerError, "Payout failed"
	case errors.Is(err, backend.ErrDependencyUnavailable):
		return http.StatusInternalServerError, "Dependency unavailable"
	default:
		return http.StatusInternalServerError, "Processing failed"
	}
}

// RegisterRoutes maps the webhook endpoint onto rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.POST("/webhook", h.HandleGitHubWebhook)
}
