// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Itinerary endpoints
	GenerateItineraryHandler    gin.HandlerFunc
	GetItineraryHandler         gin.HandlerFunc
	ListOwnerItinerariesHandler gin.HandlerFunc
	ReserveItineraryHandler     gin.HandlerFunc

	// Preference endpoints
	GetPreferencesHandler    gin.HandlerFunc
	UpdatePreferencesHandler gin.HandlerFunc
	SubmitFeedbackHandler    gin.HandlerFunc

	// Event endpoints
	CreateEventHandler gin.HandlerFunc

	HealthHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the per-domain handlers.
func NewHandlerBundle(it *ItineraryHandler, prefs *PreferenceHandler, events *EventsHandler) *HandlerBundle {
	return &HandlerBundle{
		GenerateItineraryHandler:    it.GenerateItineraryHandler,
		GetItineraryHandler:         it.GetItineraryHandler,
		ListOwnerItinerariesHandler: it.ListOwnerItinerariesHandler,
		ReserveItineraryHandler:     it.ReserveItineraryHandler,

		GetPreferencesHandler:    prefs.GetPreferencesHandler,
		UpdatePreferencesHandler: prefs.UpdatePreferencesHandler,
		SubmitFeedbackHandler:    prefs.SubmitFeedbackHandler,

		CreateEventHandler: events.CreateEventHandler,

		HealthHandler: HealthHandler,
	}
}
