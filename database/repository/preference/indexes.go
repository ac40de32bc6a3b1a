package preferenceRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes on the preferences and feedback collections.
func (r *mongoPreferenceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_user"),
	}); err != nil {
		return fmt.Errorf("failed to create preference indexes: %w", err)
	}

	if _, err := r.feedback.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}},
		Options: options.Index().SetName("user_timestamp_idx"),
	}); err != nil {
		return fmt.Errorf("failed to create feedback indexes: %w", err)
	}
	return nil
}
