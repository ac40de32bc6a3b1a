package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wayfarer/models"
)

// HTTPPrimaryBooker posts reservation requests to a partner booking API.
type HTTPPrimaryBooker struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPPrimaryBooker(baseURL string, timeout time.Duration) *HTTPPrimaryBooker {
	return &HTTPPrimaryBooker{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

type primaryRequest struct {
	ActivityID  string       `json:"activityId"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Venue       models.Venue `json:"venue"`
	DesiredTime string       `json:"desiredTime"`
}

func (b *HTTPPrimaryBooker) Attempt(ctx context.Context, activity models.Activity, desiredTime string) (PrimaryResult, error) {
	payload, err := json.Marshal(primaryRequest{
		ActivityID:  activity.ID,
		Name:        activity.Name,
		Category:    string(activity.Category),
		Venue:       activity.Venue,
		DesiredTime: desiredTime,
	})
	if err != nil {
		return PrimaryResult{}, fmt.Errorf("primary booking: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/reservations", bytes.NewReader(payload))
	if err != nil {
		return PrimaryResult{}, fmt.Errorf("primary booking: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return PrimaryResult{}, fmt.Errorf("primary booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return PrimaryResult{}, fmt.Errorf("primary booking: status %d", resp.StatusCode)
	}

	var result PrimaryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return PrimaryResult{}, fmt.Errorf("primary booking: decode response: %w", err)
	}
	return result, nil
}

// UnavailablePrimary is used when no partner API is configured; every
// attempt falls through to the fallback channel.
type UnavailablePrimary struct{}

func (UnavailablePrimary) Attempt(context.Context, models.Activity, string) (PrimaryResult, error) {
	return PrimaryResult{}, nil
}
