// File: database/repository/itinerary/interface.go
package itineraryRepo

import (
	"context"
	"errors"

	"wayfarer/database"
	"wayfarer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrItineraryNotFound = errors.New("itinerary not found")

type ItineraryRepository interface {
	Save(ctx context.Context, itinerary *models.Itinerary) (string, error)
	GetByID(ctx context.Context, id string) (*models.Itinerary, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error)
	UpdateDays(ctx context.Context, id string, days []models.DayPlan) error
	EnsureIndexes() error
}

type mongoItineraryRepo struct {
	coll *mongo.Collection
}

// NewMongoItineraryRepo constructs a new MongoDB ItineraryRepository.
func NewMongoItineraryRepo() ItineraryRepository {
	return &mongoItineraryRepo{
		coll: database.Database().Collection("itineraries"),
	}
}
