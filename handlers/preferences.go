package handlers

import (
	"context"
	"net/http"
	"time"

	"wayfarer/models"
	"wayfarer/utils"

	"github.com/gin-gonic/gin"
)

// PreferenceStore is the slice of the preference repository the API uses.
type PreferenceStore interface {
	GetProfile(ctx context.Context, userID string) (*models.PreferenceProfile, error)
	SaveProfile(ctx context.Context, profile models.PreferenceProfile) error
	AppendFeedback(ctx context.Context, response models.FeedbackResponse) error
}

type PreferenceHandler struct {
	Repo PreferenceStore
}

func NewPreferenceHandler(repo PreferenceStore) *PreferenceHandler {
	return &PreferenceHandler{Repo: repo}
}

// GetPreferencesHandler returns the stored profile, or the default profile
// when the user has none yet.
func (h *PreferenceHandler) GetPreferencesHandler(c *gin.Context) {
	userID := c.Param("userId")
	profile, err := h.Repo.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Failed to load preferences", err)
		return
	}
	if profile == nil {
		def := models.DefaultProfile(userID)
		profile = &def
	}
	c.JSON(http.StatusOK, profile)
}

func (h *PreferenceHandler) UpdatePreferencesHandler(c *gin.Context) {
	var profile models.PreferenceProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid preferences", err.Error())
		return
	}
	profile.UserID = c.Param("userId")
	if profile.Budget.Min > profile.Budget.Max {
		utils.JSONError(c, http.StatusBadRequest, "Invalid preferences", "budget min exceeds max")
		return
	}

	if err := h.Repo.SaveProfile(c.Request.Context(), profile); err != nil {
		respondError(c, "Failed to save preferences", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type feedbackInput struct {
	QuestionID string    `json:"questionId"`
	Context    string    `json:"context" binding:"required"`
	Response   string    `json:"response" binding:"required"`
	Timestamp  time.Time `json:"timestamp"`
}

func (h *PreferenceHandler) SubmitFeedbackHandler(c *gin.Context) {
	var input feedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid feedback", err.Error())
		return
	}

	resp := models.FeedbackResponse{
		UserID:     c.Param("userId"),
		QuestionID: input.QuestionID,
		Context:    input.Context,
		Response:   input.Response,
		Timestamp:  input.Timestamp,
	}
	if err := h.Repo.AppendFeedback(c.Request.Context(), resp); err != nil {
		respondError(c, "Failed to store feedback", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "feedback recorded"})
}
