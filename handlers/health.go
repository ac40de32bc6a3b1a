package handlers

import (
	"net/http"

	"wayfarer/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last observed state of Mongo and Redis.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
