package planner

import (
	"context"

	"wayfarer/models"
)

// PreferenceStore reads stored traveller preferences. GetProfile returns a
// nil profile and nil error when nothing is stored for the user.
type PreferenceStore interface {
	GetProfile(ctx context.Context, userID string) (*models.PreferenceProfile, error)
	GetRecentFeedback(ctx context.Context, userID string) (models.FeedbackSet, error)
}

// WeatherSource returns one WeatherDay per date in the range.
type WeatherSource interface {
	GetForecast(ctx context.Context, location, startDate, endDate string) ([]models.WeatherDay, error)
}

// EventsSource lists local events in the range. An empty slice is a valid result.
type EventsSource interface {
	GetEvents(ctx context.Context, location, startDate, endDate string) ([]models.EventCandidate, error)
}

// ItineraryStore persists generated itineraries.
type ItineraryStore interface {
	Save(ctx context.Context, itinerary *models.Itinerary) (string, error)
	GetByID(ctx context.Context, id string) (*models.Itinerary, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error)
	UpdateDays(ctx context.Context, id string, days []models.DayPlan) error
}

// Reserver is the part of the reservation coordinator the planner uses.
type Reserver interface {
	ReserveItinerary(ctx context.Context, itinerary *models.Itinerary) []models.ReservationOutcome
}

// Summarizer writes a short narrative for an itinerary.
type Summarizer interface {
	Summarize(ctx context.Context, itinerary *models.Itinerary) (string, error)
}

// ReservationQueue schedules reservations to run outside the request.
type ReservationQueue interface {
	EnqueueReservations(ctx context.Context, itineraryID string) error
}

// PlanRequest is a generation request from the API or CLI.
type PlanRequest struct {
	UserID       string `json:"userId" binding:"required"`
	Location     string `json:"location" binding:"required"`
	StartDate    string `json:"startDate" binding:"required"`
	EndDate      string `json:"endDate" binding:"required"`
	Reserve      bool   `json:"reserve"`
	ReserveAsync bool   `json:"reserveAsync"`
}

// PlanResult is a generated itinerary plus any inline reservation outcomes.
type PlanResult struct {
	Itinerary    *models.Itinerary           `json:"itinerary"`
	Reservations []models.ReservationOutcome `json:"reservations,omitempty"`
	Queued       bool                        `json:"queued,omitempty"`
}

type PlannerService interface {
	PlanTrip(ctx context.Context, req PlanRequest) (*PlanResult, error)
	ReserveStored(ctx context.Context, itineraryID string) ([]models.ReservationOutcome, error)
	RequestReservations(ctx context.Context, itineraryID string) (*PlanResult, error)
	GetItinerary(ctx context.Context, id string) (*models.Itinerary, error)
	ListItineraries(ctx context.Context, ownerID string) ([]models.Itinerary, error)
}
