package planner

import (
	"strings"

	"wayfarer/models"
)

var (
	adverseConditions  = []string{"rain", "storm"}
	marginalConditions = []string{"cloud", "overcast", "fog", "mist", "haze", "snow", "wind"}
)

// Suitability scores a condition tag: 0 for rain or storms, 0.5 for marginal
// skies, 1 otherwise.
func Suitability(condition string) float64 {
	c := strings.ToLower(condition)
	for _, kw := range adverseConditions {
		if strings.Contains(c, kw) {
			return 0
		}
	}
	for _, kw := range marginalConditions {
		if strings.Contains(c, kw) {
			return 0.5
		}
	}
	return 1
}

// EncodeWeather normalises temperature against 0-100°F and precipitation to
// [0,1]; probabilities above 1 are read as percentages.
func EncodeWeather(day models.WeatherDay) FeatureVector {
	precip := day.PrecipitationProb
	if precip > 1 {
		precip /= 100
	}
	v := make(FeatureVector, WeatherVectorLen)
	v[WeatherTemperature] = clamp01(day.Temperature / 100)
	v[WeatherPrecipitation] = clamp01(precip)
	v[WeatherSuitability] = Suitability(day.Condition)
	return v
}

var eventKindKeywords = map[string]string{
	"music":    "music",
	"arts":     "art",
	"food":     "food",
	"sports":   "sport",
	"festival": "festival",
}

// EncodeEvents summarises a day's events as count, mean cost and category
// indicators. An empty list yields a zero count and a neutral mean cost.
func EncodeEvents(events []models.EventCandidate) FeatureVector {
	v := make(FeatureVector, EventsVectorLen)
	n := len(events)
	v[EventsCount] = clamp01(float64(n) / 10)
	if n == 0 {
		v[EventsMeanCost] = Neutral
		return v
	}

	var total float64
	present := make(map[string]bool)
	for _, e := range events {
		total += e.Cost
		cat := strings.ToLower(e.Category)
		for kind, kw := range eventKindKeywords {
			if strings.Contains(cat, kw) {
				present[kind] = true
			}
		}
	}
	v[EventsMeanCost] = clamp01(total / float64(n) / 200)
	for i, kind := range TrackedEventKinds {
		v[EventsKinds+i] = indicator(present[kind])
	}
	return v
}
