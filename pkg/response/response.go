package response

import "github.com/gin-gonic/gin"

// ErrorBody is the uniform error envelope for all endpoints. Success bodies
// are plain resource shapes written by the handlers directly.
type ErrorBody struct {
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func body(c *gin.Context, message string, details interface{}) ErrorBody {
	return ErrorBody{
		Message:   message,
		Details:   details,
		RequestID: c.GetString("request_id"),
	}
}

// Error writes an error envelope with the given status.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, body(c, message, details))
}

// AbortError writes an error envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details interface{}) {
	c.AbortWithStatusJSON(status, body(c, message, details))
}
