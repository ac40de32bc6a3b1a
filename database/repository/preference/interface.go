// File: database/repository/preference/interface.go
package preferenceRepo

import (
	"context"

	"wayfarer/database"
	"wayfarer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// feedbackWindow caps how many recent responses are read per user.
const feedbackWindow = 100

type PreferenceRepository interface {
	GetProfile(ctx context.Context, userID string) (*models.PreferenceProfile, error)
	SaveProfile(ctx context.Context, profile models.PreferenceProfile) error
	GetRecentFeedback(ctx context.Context, userID string) (models.FeedbackSet, error)
	AppendFeedback(ctx context.Context, response models.FeedbackResponse) error
	EnsureIndexes() error
}

type mongoPreferenceRepo struct {
	profiles *mongo.Collection
	feedback *mongo.Collection
}

// NewMongoPreferenceRepo constructs a new MongoDB PreferenceRepository.
func NewMongoPreferenceRepo() PreferenceRepository {
	db := database.Database()
	return &mongoPreferenceRepo{
		profiles: db.Collection("preferences"),
		feedback: db.Collection("feedback"),
	}
}
