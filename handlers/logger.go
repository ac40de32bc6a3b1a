package handlers

import (
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request logger set by middleware.RequestLogger, with
// the matched route attached, or the process logger outside a request.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger.With(zap.String("route", c.FullPath()))
		}
	}
	return utils.GetLogger().With(zap.String("route", c.FullPath()))
}
