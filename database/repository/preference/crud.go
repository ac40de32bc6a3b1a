package preferenceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wayfarer/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProfile returns nil, nil when the user has no stored profile.
func (r *mongoPreferenceRepo) GetProfile(ctx context.Context, userID string) (*models.PreferenceProfile, error) {
	var profile models.PreferenceProfile
	err := r.profiles.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile upserts the profile keyed by user ID.
func (r *mongoPreferenceRepo) SaveProfile(ctx context.Context, profile models.PreferenceProfile) error {
	if profile.Budget.Min > profile.Budget.Max {
		return fmt.Errorf("budget min %.2f exceeds max %.2f", profile.Budget.Min, profile.Budget.Max)
	}
	profile.UpdatedAt = time.Now().UTC()
	opts := options.Replace().SetUpsert(true)
	_, err := r.profiles.ReplaceOne(ctx, bson.M{"user_id": profile.UserID}, profile, opts)
	return err
}

// GetRecentFeedback returns the newest responses keyed by question ID. When a
// question was answered more than once, the newest answer is kept.
func (r *mongoPreferenceRepo) GetRecentFeedback(ctx context.Context, userID string) (models.FeedbackSet, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(feedbackWindow)
	cursor, err := r.feedback.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []models.FeedbackResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}

	set := make(models.FeedbackSet, len(responses))
	for _, resp := range responses {
		if _, seen := set[resp.QuestionID]; !seen {
			set[resp.QuestionID] = resp
		}
	}
	return set, nil
}

// AppendFeedback stores a response. Responses are never updated or deleted.
func (r *mongoPreferenceRepo) AppendFeedback(ctx context.Context, response models.FeedbackResponse) error {
	if response.QuestionID == "" {
		response.QuestionID = uuid.New().String()
	}
	if response.Timestamp.IsZero() {
		response.Timestamp = time.Now().UTC()
	}
	_, err := r.feedback.InsertOne(ctx, response)
	return err
}
