package models

type ActivityCategory string

const (
	CategoryFood           ActivityCategory = "food"
	CategoryAttraction     ActivityCategory = "attraction"
	CategoryEvent          ActivityCategory = "event"
	CategoryTransportation ActivityCategory = "transportation"
	CategoryAccommodation  ActivityCategory = "accommodation"
	CategoryOther          ActivityCategory = "other"
)

type ReservationStatus string

const (
	ReservationNotRequired ReservationStatus = "not_required"
	ReservationPending     ReservationStatus = "pending"
	ReservationConfirmed   ReservationStatus = "confirmed"
	ReservationFailed      ReservationStatus = "failed"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Venue struct {
	Name        string      `bson:"name" json:"name"`
	Address     string      `bson:"address" json:"address"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// Activity is one scheduled slot of a day plan.
type Activity struct {
	ID                  string              `bson:"id" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Description         string              `bson:"description" json:"description"`
	StartTime           string              `bson:"start_time" json:"startTime"` // "HH:MM", zero padded
	EndTime             string              `bson:"end_time" json:"endTime"`
	Venue               Venue               `bson:"venue" json:"venue"`
	Category            ActivityCategory    `bson:"category" json:"category"`
	Cost                float64             `bson:"cost" json:"cost"`
	WeatherDependent    bool                `bson:"weather_dependent" json:"weatherDependent"`
	ReservationRequired bool                `bson:"reservation_required" json:"reservationRequired"`
	ReservationStatus   ReservationStatus   `bson:"reservation_status" json:"reservationStatus"`
	Reservation         *ReservationOutcome `bson:"reservation,omitempty" json:"reservation,omitempty"`
}

// NeedsReservation reports whether an activity of this category and cost is
// booked through the reservation coordinator.
func NeedsReservation(category ActivityCategory, cost float64) bool {
	return cost > 0 && (category == CategoryFood || category == CategoryEvent)
}
