package handlers

import (
	"net/http"

	"wayfarer/services/planner"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ItineraryHandler struct {
	Planner planner.PlannerService
}

func NewItineraryHandler(svc planner.PlannerService) *ItineraryHandler {
	return &ItineraryHandler{Planner: svc}
}

// GenerateItineraryHandler builds and stores an itinerary for the request.
func (h *ItineraryHandler) GenerateItineraryHandler(c *gin.Context) {
	var req planner.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid itinerary request", err.Error())
		return
	}

	result, err := h.Planner.PlanTrip(c.Request.Context(), req)
	if err != nil {
		respondError(c, "Failed to generate itinerary", err)
		return
	}

	getLogger(c).Info("itinerary created",
		zap.String("itinerary", result.Itinerary.ID),
		zap.Bool("queued", result.Queued))
	c.JSON(http.StatusCreated, result)
}

func (h *ItineraryHandler) GetItineraryHandler(c *gin.Context) {
	itinerary, err := h.Planner.GetItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to fetch itinerary", err)
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

func (h *ItineraryHandler) ListOwnerItinerariesHandler(c *gin.Context) {
	itineraries, err := h.Planner.ListItineraries(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, "Failed to list itineraries", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": itineraries})
}

// ReserveItineraryHandler answers 202 when the work was queued and 200 with
// outcomes when it ran inline.
func (h *ItineraryHandler) ReserveItineraryHandler(c *gin.Context) {
	result, err := h.Planner.RequestReservations(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to reserve itinerary", err)
		return
	}
	if result.Queued {
		c.JSON(http.StatusAccepted, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
