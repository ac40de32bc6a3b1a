package eventsRepo

import (
	"context"
	"fmt"
	"time"

	"wayfarer/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Case-insensitive matching on location.
var locationCollation = &options.Collation{Locale: "en", Strength: 2}

// GetEvents returns events at the location between the two dates inclusive,
// ordered by date then start time so the earliest event of a day comes first.
func (r *mongoEventsRepo) GetEvents(ctx context.Context, location, startDate, endDate string) ([]models.EventCandidate, error) {
	filter := bson.M{
		"location": location,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}).
		SetCollation(locationCollation)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.EventCandidate{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *mongoEventsRepo) Create(ctx context.Context, event models.EventCandidate) (string, error) {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if _, err := time.Parse("2006-01-02", event.Date); err != nil {
		return "", fmt.Errorf("invalid event date %q: %w", event.Date, err)
	}
	if event.Cost < 0 {
		return "", fmt.Errorf("event cost must not be negative")
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return "", err
	}
	return event.ID, nil
}

// EnsureIndexes creates the necessary indexes on the events collection.
func (r *mongoEventsRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "location", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("location_date_time_idx").SetCollation(locationCollation),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
