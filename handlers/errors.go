package handlers

import (
	"errors"
	"net/http"

	"wayfarer/database/repository"
	"wayfarer/services/planner"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, planner.ErrInvalidPlanRequest),
		errors.Is(err, planner.ErrInvalidDateRange),
		errors.Is(err, planner.ErrInvalidProfile):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrItineraryNotFound):
		return http.StatusNotFound
	case errors.Is(err, planner.ErrWeatherUnavailable),
		errors.Is(err, planner.ErrEventsUnavailable),
		errors.Is(err, planner.ErrMissingWeatherData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		getLogger(c).Error(message, zap.Error(err))
	}
	utils.JSONError(c, status, message, err.Error())
}
