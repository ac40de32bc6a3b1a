// File: database/repository/events/interface.go
package eventsRepo

import (
	"context"

	"wayfarer/database"
	"wayfarer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventsRepository interface {
	GetEvents(ctx context.Context, location, startDate, endDate string) ([]models.EventCandidate, error)
	Create(ctx context.Context, event models.EventCandidate) (string, error)
	EnsureIndexes() error
}

type mongoEventsRepo struct {
	coll *mongo.Collection
}

// NewMongoEventsRepo constructs a new MongoDB EventsRepository.
func NewMongoEventsRepo() EventsRepository {
	return &mongoEventsRepo{
		coll: database.Database().Collection("events"),
	}
}
