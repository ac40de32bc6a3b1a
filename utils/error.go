package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// contextLogger prefers the request-scoped logger stored under "logger".
func contextLogger(c *gin.Context) *zap.Logger {
	if l, ok := c.Get("logger"); ok {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return GetLogger()
}

// ErrorHandler recovers panics in later handlers and answers 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				contextLogger(c).Error("unhandled panic",
					zap.Any("error", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message:   "Internal Server Error",
					Details:   "An unexpected error occurred. Please try again later.",
					RequestID: c.Writer.Header().Get("X-Request-ID"),
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes an ErrorResponse. Client errors are logged at warn level;
// callers log server errors themselves with the underlying error attached.
func JSONError(c *gin.Context, status int, message string, details string) {
	if status < http.StatusInternalServerError {
		contextLogger(c).Warn(message, zap.Int("status", status), zap.String("details", details))
	}
	c.JSON(status, ErrorResponse{
		Message:   message,
		Details:   details,
		RequestID: c.Writer.Header().Get("X-Request-ID"),
	})
}
