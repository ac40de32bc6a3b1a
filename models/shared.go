package models

// ReservationPayload is the queued job body for running an itinerary's
// reservations outside the request that generated it.
type ReservationPayload struct {
	ItineraryID string `json:"itineraryId"`
	RequestedAt string `json:"requestedAt"` // RFC3339, informational
}
