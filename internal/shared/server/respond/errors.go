package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/shared/telemetry"
)

// ErrorBody is the standardized error object: a machine-readable code and a
// human-readable message.
type ErrorBody struct {
	Code    string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	fields := map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if userID := c.GetString("userId"); userID != "" {
		fields["user_id"] = userID
	}
	if isGuest, ok := c.Get("isGuest"); ok {
		fields["is_guest"] = isGuest
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	})
}
