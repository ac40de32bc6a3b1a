package itineraryRepo

import (
	"context"
	"errors"
	"time"

	"wayfarer/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new itinerary and returns its ID. Itineraries are written
// once; later changes go through UpdateDays.
func (r *mongoItineraryRepo) Save(ctx context.Context, itinerary *models.Itinerary) (string, error) {
	if itinerary.ID == "" {
		itinerary.ID = uuid.New().String()
	}
	if itinerary.CreatedAt.IsZero() {
		itinerary.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, itinerary); err != nil {
		return "", err
	}
	return itinerary.ID, nil
}

func (r *mongoItineraryRepo) GetByID(ctx context.Context, id string) (*models.Itinerary, error) {
	var itinerary models.Itinerary
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&itinerary)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrItineraryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

// ListByOwner returns an owner's itineraries, newest first.
func (r *mongoItineraryRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	itineraries := []models.Itinerary{}
	if err := cursor.All(ctx, &itineraries); err != nil {
		return nil, err
	}
	return itineraries, nil
}

// UpdateDays replaces the day plans, which carry reservation outcomes.
func (r *mongoItineraryRepo) UpdateDays(ctx context.Context, id string, days []models.DayPlan) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"days": days}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItineraryNotFound
	}
	return nil
}
