package reservation

import (
	"context"

	"wayfarer/models"
)

// PrimaryResult is the response of the primary reservation provider.
type PrimaryResult struct {
	Success        bool   `json:"success"`
	ConfirmationID string `json:"confirmationId,omitempty"`
}

// PrimaryBooker books directly with the venue's reservation provider. A
// denial or an error both mean "no availability".
type PrimaryBooker interface {
	Attempt(ctx context.Context, activity models.Activity, desiredTime string) (PrimaryResult, error)
}

// FallbackRequest describes what the fallback channel should try to book.
type FallbackRequest struct {
	ActivityType string                   `json:"activityType"`
	ActivityName string                   `json:"activityName"`
	DesiredTime  string                   `json:"desiredTime"`
	Location     string                   `json:"location"`
	Preferences  models.PreferenceProfile `json:"preferences"`
}

type FallbackResult struct {
	Success       bool   `json:"success"`
	ReservationID string `json:"reservationId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

// FallbackBooker is the alternate booking channel tried after the primary.
type FallbackBooker interface {
	Attempt(ctx context.Context, req FallbackRequest) (FallbackResult, error)
}

// Request is one activity to reserve on a given date.
type Request struct {
	Activity    models.Activity
	Date        string
	Location    string
	Preferences models.PreferenceProfile
}

// ReservationService reserves single activities or every reservable activity
// of an itinerary.
type ReservationService interface {
	Reserve(ctx context.Context, req Request) (models.ReservationOutcome, error)
	ReserveItinerary(ctx context.Context, itinerary *models.Itinerary) []models.ReservationOutcome
}
