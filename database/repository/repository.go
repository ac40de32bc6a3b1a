package repository

import (
	eventsRepo "wayfarer/database/repository/events"
	itineraryRepo "wayfarer/database/repository/itinerary"
	preferenceRepo "wayfarer/database/repository/preference"
)

// Re-export the ItineraryRepository interface and constructor.
type ItineraryRepository = itineraryRepo.ItineraryRepository

var NewMongoItineraryRepo = itineraryRepo.NewMongoItineraryRepo

var ErrItineraryNotFound = itineraryRepo.ErrItineraryNotFound

// Re-export the PreferenceRepository interface and constructor.
type PreferenceRepository = preferenceRepo.PreferenceRepository

var NewMongoPreferenceRepo = preferenceRepo.NewMongoPreferenceRepo

// Re-export the EventsRepository interface and constructor.
type EventsRepository = eventsRepo.EventsRepository

var NewMongoEventsRepo = eventsRepo.NewMongoEventsRepo
