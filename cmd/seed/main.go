// seed loads sample local events and traveller profiles for development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"wayfarer/config"
	"wayfarer/database"
	"wayfarer/database/repository"
	"wayfarer/models"
)

type eventTemplate struct {
	Name     string
	Category string
	Time     string
	Venue    string
	MinCost  int
	MaxCost  int
}

var eventTemplates = []eventTemplate{
	{"Jazz in the Square", "music", "18:00", "Town Square Stage", 0, 25},
	{"Night Market Food Crawl", "food", "17:30", "Harbour Night Market", 10, 40},
	{"Gallery Late Opening", "arts", "17:00", "Contemporary Art Hall", 0, 15},
	{"Derby Match", "sports", "19:00", "City Stadium", 30, 90},
	{"Lantern Festival", "festival", "18:30", "Riverside Park", 0, 10},
}

var sampleProfiles = []models.PreferenceProfile{
	{
		UserID:        "demo-hiker",
		ActivityTypes: []string{"hiking", "food"},
		Budget:        models.BudgetRange{Min: 50, Max: 150},
		Pace:          models.PaceActive,
	},
	{
		UserID:              "demo-relaxed",
		ActivityTypes:       []string{"museums", "shopping"},
		Budget:              models.BudgetRange{Min: 100, Max: 400},
		Pace:                models.PaceRelaxed,
		Accessibility:       true,
		DietaryRestrictions: []string{"vegetarian"},
	},
}

func main() {
	location := flag.String("location", "Sample City", "Location to seed events for")
	days := flag.Int("days", 7, "Number of days of events starting today")
	flag.Parse()

	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	events := repository.NewMongoEventsRepo()
	if err := events.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure event indexes: %v", err)
	}

	// Roughly every other evening gets an event.
	inserted := 0
	today := time.Now()
	for i := 0; i < *days; i++ {
		if rand.Intn(2) == 0 {
			continue
		}
		tpl := eventTemplates[rand.Intn(len(eventTemplates))]
		event := models.EventCandidate{
			Name:        tpl.Name,
			Category:    tpl.Category,
			Location:    *location,
			Date:        today.AddDate(0, 0, i).Format("2006-01-02"),
			Time:        tpl.Time,
			Venue:       tpl.Venue,
			Cost:        float64(tpl.MinCost + rand.Intn(tpl.MaxCost-tpl.MinCost+1)),
			Description: fmt.Sprintf("%s at %s", tpl.Name, tpl.Venue),
		}
		if _, err := events.Create(ctx, event); err != nil {
			log.Fatalf("Failed to insert event: %v", err)
		}
		inserted++
	}

	prefs := repository.NewMongoPreferenceRepo()
	if err := prefs.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure preference indexes: %v", err)
	}
	for _, p := range sampleProfiles {
		if err := prefs.SaveProfile(ctx, p); err != nil {
			log.Fatalf("Failed to save profile %s: %v", p.UserID, err)
		}
	}

	fmt.Printf("Inserted %d events for %s and %d sample profiles\n", inserted, *location, len(sampleProfiles))
}
