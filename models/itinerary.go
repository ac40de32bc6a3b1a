package models

import (
	"fmt"
	"math"
	"time"
)

// DaySignals keeps the normalised context vectors a day was planned from.
type DaySignals struct {
	Weather []float64 `bson:"weather" json:"weather"`
	Events  []float64 `bson:"events" json:"events"`
}

// DayPlan is one calendar day of an itinerary. Activities stay in ascending
// start time order.
type DayPlan struct {
	Date       string     `bson:"date" json:"date"`
	Weather    WeatherDay `bson:"weather" json:"weather"`
	Activities []Activity `bson:"activities" json:"activities"`
	Signals    DaySignals `bson:"signals" json:"signals"`
}

// Itinerary is a generated trip plan.
type Itinerary struct {
	ID          string            `bson:"id" json:"id"`
	Title       string            `bson:"title" json:"title"`
	Location    string            `bson:"location" json:"location"`
	StartDate   string            `bson:"start_date" json:"startDate"`
	EndDate     string            `bson:"end_date" json:"endDate"`
	OwnerID     string            `bson:"owner_id" json:"ownerId"`
	Preferences PreferenceProfile `bson:"preferences" json:"preferences"` // snapshot at generation time
	Days        []DayPlan         `bson:"days" json:"days"`
	TotalCost   float64           `bson:"total_cost" json:"totalCost"`
	Summary     string            `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
}

// SumCosts adds every activity cost across all days.
func (it *Itinerary) SumCosts() float64 {
	var total float64
	for _, day := range it.Days {
		for _, a := range day.Activities {
			total += a.Cost
		}
	}
	return total
}

// VerifyTotals checks the cost rollup and the per-day start time ordering.
func (it *Itinerary) VerifyTotals() error {
	if sum := it.SumCosts(); math.Abs(sum-it.TotalCost) > 1e-9 {
		return fmt.Errorf("itinerary %s: total cost %.2f does not match activity sum %.2f", it.ID, it.TotalCost, sum)
	}
	for _, day := range it.Days {
		for i := 1; i < len(day.Activities); i++ {
			if day.Activities[i].StartTime < day.Activities[i-1].StartTime {
				return fmt.Errorf("itinerary %s: activities on %s out of order at %q", it.ID, day.Date, day.Activities[i].Name)
			}
		}
	}
	return nil
}

// ReservableActivities returns pointers to activities that still need a
// booking attempt, in itinerary order.
func (it *Itinerary) ReservableActivities() []*Activity {
	var out []*Activity
	for d := range it.Days {
		for a := range it.Days[d].Activities {
			act := &it.Days[d].Activities[a]
			if act.ReservationRequired && act.ReservationStatus != ReservationConfirmed {
				out = append(out, act)
			}
		}
	}
	return out
}
