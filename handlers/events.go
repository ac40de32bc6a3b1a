package handlers

import (
	"context"
	"net/http"

	"wayfarer/models"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
)

type EventCreator interface {
	Create(ctx context.Context, event models.EventCandidate) (string, error)
}

type EventsHandler struct {
	Repo EventCreator
}

func NewEventsHandler(repo EventCreator) *EventsHandler {
	return &EventsHandler{Repo: repo}
}

type eventInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Location    string  `json:"location" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time"`
	Venue       string  `json:"venue"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Description string  `json:"description"`
}

// CreateEventHandler registers a local event that later itineraries can pick up.
func (h *EventsHandler) CreateEventHandler(c *gin.Context) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}

	event := models.EventCandidate{
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Date:        input.Date,
		Time:        input.Time,
		Venue:       input.Venue,
		Cost:        input.Cost,
		Description: input.Description,
	}
	id, err := h.Repo.Create(c.Request.Context(), event)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to create event", err.Error())
		return
	}
	event.ID = id
	c.JSON(http.StatusCreated, event)
}
