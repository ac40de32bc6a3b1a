package main

import (
	"fmt"
	"os"
	"time"

	"wayfarer/models"

	"gopkg.in/yaml.v3"
)

// tripFixture is the YAML shape read by planctl. Forecast may be omitted, in
// which case the seasonal mock is used.
type tripFixture struct {
	UserID    string            `yaml:"userId"`
	Location  string            `yaml:"location"`
	StartDate string            `yaml:"startDate"`
	EndDate   string            `yaml:"endDate"`
	Profile   *profileFixture   `yaml:"profile"`
	Feedback  []feedbackFixture `yaml:"feedback"`
	Forecast  []weatherFixture  `yaml:"forecast"`
	Events    []eventFixture    `yaml:"events"`
}

type profileFixture struct {
	ActivityTypes       []string `yaml:"activityTypes"`
	BudgetMin           float64  `yaml:"budgetMin"`
	BudgetMax           float64  `yaml:"budgetMax"`
	Pace                string   `yaml:"pace"`
	Accessibility       bool     `yaml:"accessibility"`
	DietaryRestrictions []string `yaml:"dietaryRestrictions"`
}

type feedbackFixture struct {
	QuestionID string    `yaml:"questionId"`
	Context    string    `yaml:"context"`
	Response   string    `yaml:"response"`
	Timestamp  time.Time `yaml:"timestamp"`
}

type weatherFixture struct {
	Date              string  `yaml:"date"`
	Condition         string  `yaml:"condition"`
	Temperature       float64 `yaml:"temperature"`
	PrecipitationProb float64 `yaml:"precipitation"`
	Wind              float64 `yaml:"wind"`
}

type eventFixture struct {
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Date     string  `yaml:"date"`
	Time     string  `yaml:"time"`
	Venue    string  `yaml:"venue"`
	Cost     float64 `yaml:"cost"`
}

func loadFixture(path string) (*tripFixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f tripFixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.UserID == "" {
		f.UserID = "planctl"
	}
	return &f, nil
}

func (f *tripFixture) profile() models.PreferenceProfile {
	if f.Profile == nil {
		return models.DefaultProfile(f.UserID)
	}
	return models.PreferenceProfile{
		UserID:              f.UserID,
		ActivityTypes:       f.Profile.ActivityTypes,
		Budget:              models.BudgetRange{Min: f.Profile.BudgetMin, Max: f.Profile.BudgetMax},
		Pace:                models.TravelPace(f.Profile.Pace),
		Accessibility:       f.Profile.Accessibility,
		DietaryRestrictions: f.Profile.DietaryRestrictions,
	}
}

func (f *tripFixture) feedback() models.FeedbackSet {
	set := make(models.FeedbackSet, len(f.Feedback))
	for i, fb := range f.Feedback {
		id := fb.QuestionID
		if id == "" {
			id = fmt.Sprintf("q%d", i+1)
		}
		set[id] = models.FeedbackResponse{
			UserID:     f.UserID,
			QuestionID: id,
			Context:    fb.Context,
			Response:   fb.Response,
			Timestamp:  fb.Timestamp,
		}
	}
	return set
}

func (f *tripFixture) forecast() []models.WeatherDay {
	days := make([]models.WeatherDay, 0, len(f.Forecast))
	for _, w := range f.Forecast {
		days = append(days, models.WeatherDay{
			Date:              w.Date,
			Condition:         w.Condition,
			Temperature:       w.Temperature,
			PrecipitationProb: w.PrecipitationProb,
			Wind:              w.Wind,
		})
	}
	return days
}

func (f *tripFixture) events() []models.EventCandidate {
	events := make([]models.EventCandidate, 0, len(f.Events))
	for i, e := range f.Events {
		events = append(events, models.EventCandidate{
			ID:       fmt.Sprintf("evt-%d", i+1),
			Name:     e.Name,
			Category: e.Category,
			Location: f.Location,
			Date:     e.Date,
			Time:     e.Time,
			Venue:    e.Venue,
			Cost:     e.Cost,
		})
	}
	return events
}
