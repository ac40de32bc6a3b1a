package models

// EventCandidate is a local event that may fill the optional event slot.
type EventCandidate struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Category    string  `bson:"category" json:"category"`
	Location    string  `bson:"location" json:"location"`
	Date        string  `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string  `bson:"time" json:"time"` // "HH:MM"
	Venue       string  `bson:"venue" json:"venue"`
	Cost        float64 `bson:"cost" json:"cost"`
	Description string  `bson:"description" json:"description"`
}
