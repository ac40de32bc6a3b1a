package planner

import (
	"testing"

	"wayfarer/models"

	"github.com/google/go-cmp/cmp"
)

func activityNames(acts []models.Activity) []string {
	names := make([]string, len(acts))
	for i, a := range acts {
		names[i] = a.Name
	}
	return names
}

func balancedPrefs(t *testing.T) FeatureVector {
	t.Helper()
	v, err := EncodePreferences(models.DefaultProfile("u1"), nil)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSelectDay_WeatherChoosesLateMorning(t *testing.T) {
	prefs := balancedPrefs(t)
	tests := []struct {
		condition string
		want      []string
		cost      float64
	}{
		{"sunny", []string{"Breakfast", "Outdoor Exploration", "Lunch", "Local Market & Shopping", "Dinner"}, 110},
		{"scattered clouds", []string{"Breakfast", "Outdoor Exploration", "Lunch", "Local Market & Shopping", "Dinner"}, 110},
		{"heavy rain", []string{"Breakfast", "Museum Visit", "Lunch", "Local Market & Shopping", "Dinner"}, 130},
	}
	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			weather := EncodeWeather(models.WeatherDay{Condition: tt.condition, Temperature: 70})
			acts := SelectDay("2025-06-01", weather, nil, prefs, "Lisbon")
			if diff := cmp.Diff(tt.want, activityNames(acts)); diff != "" {
				t.Errorf("names (-want +got):\n%s", diff)
			}
			var total float64
			for _, a := range acts {
				total += a.Cost
			}
			if total != tt.cost {
				t.Errorf("day cost = %v, want %v", total, tt.cost)
			}
		})
	}
}

func TestSelectDay_OutdoorIsWeatherDependent(t *testing.T) {
	weather := EncodeWeather(models.WeatherDay{Condition: "sunny"})
	acts := SelectDay("2025-06-01", weather, nil, balancedPrefs(t), "Lisbon")
	for _, a := range acts {
		if got, want := a.WeatherDependent, a.Name == "Outdoor Exploration"; got != want {
			t.Errorf("%s: WeatherDependent = %v, want %v", a.Name, got, want)
		}
	}
}

func TestSelectDay_EventSlot(t *testing.T) {
	weather := EncodeWeather(models.WeatherDay{Condition: "sunny"})
	events := []models.EventCandidate{
		{ID: "e1", Name: "Fado Night", Category: "music", Date: "2025-06-01", Time: "18:00", Venue: "Casa do Fado", Cost: 25},
		{ID: "e2", Name: "Second Show", Category: "music", Date: "2025-06-01", Venue: "Elsewhere", Cost: 10},
	}
	acts := SelectDay("2025-06-01", weather, events, balancedPrefs(t), "Lisbon")
	if len(acts) != 6 {
		t.Fatalf("got %d activities, want 6", len(acts))
	}

	ev := acts[4]
	want := models.Activity{
		ID:                  "2025-06-01-event",
		Name:                "Fado Night",
		Description:         "Fado Night at Casa do Fado (starts 18:00)",
		StartTime:           "17:00",
		EndTime:             "19:00",
		Venue:               models.Venue{Name: "Casa do Fado", Address: "Lisbon"},
		Category:            models.CategoryEvent,
		Cost:                25,
		ReservationRequired: true,
		ReservationStatus:   models.ReservationPending,
	}
	if diff := cmp.Diff(want, ev); diff != "" {
		t.Errorf("event activity (-want +got):\n%s", diff)
	}

	for i := 1; i < len(acts); i++ {
		if acts[i].StartTime < acts[i-1].StartTime {
			t.Errorf("activity %d (%s) starts before %s", i, acts[i].Name, acts[i-1].Name)
		}
	}
}

func TestSelectDay_FreeEventNeedsNoReservation(t *testing.T) {
	weather := EncodeWeather(models.WeatherDay{Condition: "sunny"})
	events := []models.EventCandidate{{Name: "Open Air Cinema", Venue: "Park", Cost: 0}}
	acts := SelectDay("2025-06-01", weather, events, balancedPrefs(t), "Lisbon")

	ev := acts[4]
	if ev.ReservationRequired || ev.ReservationStatus != models.ReservationNotRequired {
		t.Errorf("free event: required=%v status=%s", ev.ReservationRequired, ev.ReservationStatus)
	}
	if ev.Description != "Open Air Cinema at Park" {
		t.Errorf("description = %q", ev.Description)
	}
}

func TestSelectDay_ReservationFlags(t *testing.T) {
	weather := EncodeWeather(models.WeatherDay{Condition: "sunny"})
	acts := SelectDay("2025-06-01", weather, nil, balancedPrefs(t), "Lisbon")

	got := map[string]bool{}
	for _, a := range acts {
		got[a.Name] = a.ReservationRequired
	}
	want := map[string]bool{
		"Breakfast":               true,
		"Outdoor Exploration":     false,
		"Lunch":                   true,
		"Local Market & Shopping": false,
		"Dinner":                  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reservation flags (-want +got):\n%s", diff)
	}
}

func TestSelectDay_AccessibleOutdoorDescription(t *testing.T) {
	profile := models.DefaultProfile("u1")
	profile.Accessibility = true
	prefs, err := EncodePreferences(profile, nil)
	if err != nil {
		t.Fatal(err)
	}
	weather := EncodeWeather(models.WeatherDay{Condition: "sunny"})
	acts := SelectDay("2025-06-01", weather, nil, prefs, "Lisbon")
	if got, want := acts[1].Description, "Explore step-free parks and promenades in Lisbon"; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
}
