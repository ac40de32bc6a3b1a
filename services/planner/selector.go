package planner

import (
	"fmt"

	"wayfarer/models"
)

// Slot costs in USD.
const (
	BreakfastCost = 15.0
	OutdoorCost   = 0.0
	MuseumCost    = 20.0
	LunchCost     = 25.0
	MarketCost    = 30.0
	DinnerCost    = 40.0
)

type slot struct {
	key   string
	start string
	end   string
}

// The day template. Every DayPlan follows this order.
var (
	slotBreakfast   = slot{"breakfast", "08:00", "09:00"}
	slotLateMorning = slot{"late-morning", "10:00", "12:00"}
	slotLunch       = slot{"lunch", "12:30", "13:30"}
	slotAfternoon   = slot{"afternoon", "14:00", "16:00"}
	slotEvent       = slot{"event", "17:00", "19:00"}
	slotDinner      = slot{"dinner", "19:30", "21:00"}
)

func newActivity(date string, s slot, name, description string, category models.ActivityCategory, cost float64, venue models.Venue, weatherDependent bool) models.Activity {
	if cost < 0 {
		cost = 0
	}
	a := models.Activity{
		ID:                  fmt.Sprintf("%s-%s", date, s.key),
		Name:                name,
		Description:         description,
		StartTime:           s.start,
		EndTime:             s.end,
		Venue:               venue,
		Category:            category,
		Cost:                cost,
		WeatherDependent:    weatherDependent,
		ReservationRequired: models.NeedsReservation(category, cost),
		ReservationStatus:   models.ReservationNotRequired,
	}
	if a.ReservationRequired {
		a.ReservationStatus = models.ReservationPending
	}
	return a
}

func localVenue(name, location string) models.Venue {
	return models.Venue{Name: name, Address: location}
}

// SelectDay builds the ordered activities for one date. Only the first event
// candidate is used; callers pre-sort candidates to express priority.
func SelectDay(date string, weather FeatureVector, events []models.EventCandidate, prefs FeatureVector, location string) []models.Activity {
	activities := make([]models.Activity, 0, 6)

	activities = append(activities, newActivity(date, slotBreakfast,
		"Breakfast", fmt.Sprintf("Start the day at a local café in %s", location),
		models.CategoryFood, BreakfastCost, localVenue("Local Café", location), false))

	if weather.At(WeatherSuitability) >= 0.5 {
		desc := fmt.Sprintf("Explore the best outdoor spots in %s", location)
		if prefs.At(PrefAccessibility) == 1 {
			desc = fmt.Sprintf("Explore step-free parks and promenades in %s", location)
		}
		activities = append(activities, newActivity(date, slotLateMorning,
			"Outdoor Exploration", desc,
			models.CategoryAttraction, OutdoorCost, localVenue("City Parks", location), true))
	} else {
		activities = append(activities, newActivity(date, slotLateMorning,
			"Museum Visit", fmt.Sprintf("Visit a local museum in %s", location),
			models.CategoryAttraction, MuseumCost, localVenue("City Museum", location), false))
	}

	activities = append(activities, newActivity(date, slotLunch,
		"Lunch", fmt.Sprintf("Lunch at a popular local restaurant in %s", location),
		models.CategoryFood, LunchCost, localVenue("Local Restaurant", location), false))

	activities = append(activities, newActivity(date, slotAfternoon,
		"Local Market & Shopping", fmt.Sprintf("Browse the markets and shops of %s", location),
		models.CategoryAttraction, MarketCost, localVenue("Central Market", location), false))

	if len(events) > 0 {
		e := events[0]
		desc := e.Description
		if desc == "" {
			desc = fmt.Sprintf("%s at %s", e.Name, e.Venue)
		}
		if e.Time != "" {
			desc = fmt.Sprintf("%s (starts %s)", desc, e.Time)
		}
		activities = append(activities, newActivity(date, slotEvent,
			e.Name, desc, models.CategoryEvent, e.Cost, localVenue(e.Venue, location), false))
	}

	activities = append(activities, newActivity(date, slotDinner,
		"Dinner", fmt.Sprintf("Dinner at a well-reviewed restaurant in %s", location),
		models.CategoryFood, DinnerCost, localVenue("Evening Restaurant", location), false))

	return activities
}
