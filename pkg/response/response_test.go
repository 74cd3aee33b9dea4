package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github-bounty-agent/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Status", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Status(c, "processed")

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		var resp response.StatusResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Status != "processed" {
			t.Errorf("expected status processed, got %q", resp.Status)
		}
	})

	t.Run("ErrorWithDetails", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ErrorWithDetails(c, http.StatusFailedDependency, "dependency failed", "no token")

		if w.Code != http.StatusFailedDependency {
			t.Errorf("expected 424, got %d", w.Code)
		}
		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != "dependency failed" || resp.Details != "no token" {
			t.Errorf("unexpected body: %+v", resp)
		}
	})

	t.Run("Error omits empty details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.BadRequest(c, "Invalid JSON")

		var raw map[string]any
		json.Unmarshal(w.Body.Bytes(), &raw)
		if _, ok := raw["details"]; ok {
			t.Errorf("details should be omitted, got %v", raw)
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c, errors.New("chain down"))

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Details != "chain down" {
			t.Errorf("expected details to carry the error, got %q", resp.Details)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Unauthorized(c, "Invalid signature")

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/nope", nil)

		response.NotFound(c)

		var resp response.ErrResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if w.Code != http.StatusNotFound || resp.Path != "/nope" {
			t.Errorf("unexpected not found response: %d %+v", w.Code, resp)
		}
	})
}
