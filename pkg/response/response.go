package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Status sends 200 {"status": status}.
func Status(c *gin.Context, status string) {
	c.JSON(http.StatusOK, StatusResp{Status: status})
}

// Error sends {"error": msg} with the given status code.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, ErrResp{Error: msg})
}

// ErrorWithDetails sends {"error": msg, "details": details} with the given status code.
func ErrorWithDetails(c *gin.Context, code int, msg string, details string) {
	c.JSON(code, ErrResp{Error: msg, Details: details})
}

// BadRequest sends 400.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

// InternalError sends 500 with the error text as details.
func InternalError(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	ErrorWithDetails(c, http.StatusInternalServerError, DefaultErrorMessage, details)
}

// NotFound sends 404 with the requested path.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrResp{Error: MessageNotFound, Path: c.Request.URL.Path})
}
