package routes

import (
	"time"

	"wayfarer/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterItineraryRoutes registers itinerary generation and lookup endpoints.
func RegisterItineraryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/itineraries")
	{
		api.POST("", hb.GenerateItineraryHandler)
		api.GET("/:id", hb.GetItineraryHandler)
		api.GET("/owner/:userId", hb.ListOwnerItinerariesHandler)
		api.POST("/:id/reservations", hb.ReserveItineraryHandler)
	}
}

// RegisterPreferenceRoutes registers traveller preference and feedback endpoints.
func RegisterPreferenceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/preferences")
	{
		api.GET("/:userId", hb.GetPreferencesHandler)
		api.PUT("/:userId", hb.UpdatePreferencesHandler)
		api.POST("/:userId/feedback", hb.SubmitFeedbackHandler)
	}
}

// RegisterEventRoutes registers local event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/events", hb.CreateEventHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterItineraryRoutes(r, hb)
	RegisterPreferenceRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
