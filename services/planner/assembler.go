package planner

import (
	"fmt"
	"time"

	"wayfarer/models"
)

const dateLayout = "2006-01-02"

// MaxTripDays bounds a single generation request.
const MaxTripDays = 31

// GenerateRequest carries everything one generation call needs.
type GenerateRequest struct {
	Location  string
	StartDate string
	EndDate   string
	OwnerID   string
	Profile   models.PreferenceProfile
	Feedback  models.FeedbackSet
	Forecast  []models.WeatherDay
	Events    []models.EventCandidate
}

// DateRange returns every date from start to end inclusive. Ranges longer
// than MaxTripDays are rejected before any date is built.
func DateRange(start, end string) ([]string, error) {
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, newPlanningError(ErrInvalidDateRange, "start date %q: %v", start, err)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, newPlanningError(ErrInvalidDateRange, "end date %q: %v", end, err)
	}
	if to.Before(from) {
		return nil, newPlanningError(ErrInvalidDateRange, "start %s is after end %s", start, end)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > MaxTripDays {
		return nil, newPlanningError(ErrInvalidDateRange, "trip spans %d days, at most %d allowed", days, MaxTripDays)
	}
	dates := make([]string, 0, MaxTripDays)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates, nil
}

// Generate assembles an itinerary. It has no side effects; ID and CreatedAt
// are left for the store to assign.
func Generate(req GenerateRequest) (*models.Itinerary, error) {
	dates, err := DateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	prefs, err := EncodePreferences(req.Profile, req.Feedback)
	if err != nil {
		return nil, err
	}

	forecast := make(map[string]models.WeatherDay, len(req.Forecast))
	for _, w := range req.Forecast {
		if _, dup := forecast[w.Date]; !dup {
			forecast[w.Date] = w
		}
	}

	eventsByDate := make(map[string][]models.EventCandidate)
	for _, e := range req.Events {
		eventsByDate[e.Date] = append(eventsByDate[e.Date], e)
	}

	itinerary := &models.Itinerary{
		Title:       fmt.Sprintf("Trip to %s", req.Location),
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		OwnerID:     req.OwnerID,
		Preferences: req.Profile.Clone(),
		Days:        make([]models.DayPlan, 0, len(dates)),
	}

	for _, date := range dates {
		weather, ok := forecast[date]
		if !ok {
			return nil, newPlanningError(ErrMissingWeatherData, "no forecast for %s", date)
		}
		dayEvents := eventsByDate[date]
		weatherVec := EncodeWeather(weather)

		activities := SelectDay(date, weatherVec, dayEvents, prefs, req.Location)
		for _, a := range activities {
			itinerary.TotalCost += a.Cost
		}
		itinerary.Days = append(itinerary.Days, models.DayPlan{
			Date:       date,
			Weather:    weather,
			Activities: activities,
			Signals: models.DaySignals{
				Weather: weatherVec,
				Events:  EncodeEvents(dayEvents),
			},
		})
	}

	if err := itinerary.VerifyTotals(); err != nil {
		return nil, err
	}
	return itinerary, nil
}
