package models

import "time"

// Feedback contexts recognised by the preference encoder.
const (
	FeedbackMood        = "mood"
	FeedbackBudget      = "budget"
	FeedbackEnvironment = "environment"
	FeedbackSocial      = "social"
	FeedbackFood        = "food"
)

// FeedbackResponse is one free-text answer to an in-app travel question.
type FeedbackResponse struct {
	UserID     string    `bson:"user_id" json:"userId,omitempty"`
	QuestionID string    `bson:"question_id" json:"questionId"`
	Context    string    `bson:"context" json:"context"`
	Response   string    `bson:"response" json:"response"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// FeedbackSet maps question IDs to responses.
type FeedbackSet map[string]FeedbackResponse
