package models

import "time"

type TravelPace string

const (
	PaceRelaxed  TravelPace = "relaxed"
	PaceBalanced TravelPace = "balanced"
	PaceActive   TravelPace = "active"
)

// BudgetRange is the per-day spend a user is comfortable with, in USD.
type BudgetRange struct {
	Min float64 `bson:"min" json:"min"`
	Max float64 `bson:"max" json:"max"`
}

// PreferenceProfile is the stored preference set of a traveller.
type PreferenceProfile struct {
	UserID              string      `bson:"user_id" json:"userId"`
	ActivityTypes       []string    `bson:"activity_types" json:"activityTypes"`             // e.g. "hiking", "museums"
	Budget              BudgetRange `bson:"budget" json:"budget"`                            // min must not exceed max
	Pace                TravelPace  `bson:"pace" json:"pace"`                                // relaxed, balanced or active
	Accessibility       bool        `bson:"accessibility" json:"accessibility"`              // step-free routes required
	DietaryRestrictions []string    `bson:"dietary_restrictions" json:"dietaryRestrictions"` // e.g. "vegan"
	UpdatedAt           time.Time   `bson:"updated_at" json:"updatedAt"`
}

// DefaultProfile is used for travellers with no stored preferences.
func DefaultProfile(userID string) PreferenceProfile {
	return PreferenceProfile{
		UserID: userID,
		Budget: BudgetRange{Min: 0, Max: 500},
		Pace:   PaceBalanced,
	}
}

// Clone returns a deep copy so snapshots never share slices with the caller.
func (p PreferenceProfile) Clone() PreferenceProfile {
	out := p
	if p.ActivityTypes != nil {
		out.ActivityTypes = append([]string(nil), p.ActivityTypes...)
	}
	if p.DietaryRestrictions != nil {
		out.DietaryRestrictions = append([]string(nil), p.DietaryRestrictions...)
	}
	return out
}
