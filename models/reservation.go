package models

type BookingProvider string

const (
	ProviderPrimary  BookingProvider = "primary"
	ProviderFallback BookingProvider = "fallback"
)

// ReservationOutcome records the result of booking one activity.
// ConfirmationID is set iff Success; FailureReason is set iff !Success.
type ReservationOutcome struct {
	ActivityRef    string            `bson:"activity_ref" json:"activityRef"`
	Status         ReservationStatus `bson:"status" json:"status"`
	Success        bool              `bson:"success" json:"success"`
	ConfirmationID string            `bson:"confirmation_id,omitempty" json:"confirmationId,omitempty"`
	Provider       BookingProvider   `bson:"provider,omitempty" json:"provider,omitempty"`
	FailureReason  string            `bson:"failure_reason,omitempty" json:"failureReason,omitempty"`
}
