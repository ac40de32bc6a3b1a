package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfarer/database/repository"
	"wayfarer/models"
	"wayfarer/services/planner"

	"github.com/gin-gonic/gin"
)

type fakePlanner struct {
	lastReq planner.PlanRequest
	planErr error
	queued  bool
}

func (f *fakePlanner) PlanTrip(_ context.Context, req planner.PlanRequest) (*planner.PlanResult, error) {
	f.lastReq = req
	if f.planErr != nil {
		return nil, f.planErr
	}
	return &planner.PlanResult{Itinerary: &models.Itinerary{ID: "it-1", Location: req.Location}}, nil
}

func (f *fakePlanner) ReserveStored(context.Context, string) ([]models.ReservationOutcome, error) {
	return nil, nil
}

func (f *fakePlanner) RequestReservations(_ context.Context, id string) (*planner.PlanResult, error) {
	if id != "it-1" {
		return nil, repository.ErrItineraryNotFound
	}
	return &planner.PlanResult{Itinerary: &models.Itinerary{ID: id}, Queued: f.queued}, nil
}

func (f *fakePlanner) GetItinerary(_ context.Context, id string) (*models.Itinerary, error) {
	if id != "it-1" {
		return nil, repository.ErrItineraryNotFound
	}
	return &models.Itinerary{ID: id}, nil
}

func (f *fakePlanner) ListItineraries(context.Context, string) ([]models.Itinerary, error) {
	return []models.Itinerary{{ID: "it-1"}}, nil
}

func newTestRouter(p planner.PlannerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewItineraryHandler(p)
	r := gin.New()
	r.POST("/api/itineraries", h.GenerateItineraryHandler)
	r.GET("/api/itineraries/:id", h.GetItineraryHandler)
	r.GET("/api/itineraries/owner/:userId", h.ListOwnerItinerariesHandler)
	r.POST("/api/itineraries/:id/reservations", h.ReserveItineraryHandler)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateItineraryHandler(t *testing.T) {
	p := &fakePlanner{}
	r := newTestRouter(p)

	w := doJSON(r, http.MethodPost, "/api/itineraries", map[string]any{
		"userId": "u1", "location": "Lisbon", "startDate": "2025-06-01", "endDate": "2025-06-02", "reserve": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if !p.lastReq.Reserve || p.lastReq.Location != "Lisbon" {
		t.Errorf("request = %+v", p.lastReq)
	}
	var res planner.PlanResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.Itinerary.ID != "it-1" {
		t.Errorf("body = %s (%v)", w.Body, err)
	}
}

func TestGenerateItineraryHandler_ErrorStatus(t *testing.T) {
	valid := map[string]any{"userId": "u1", "location": "Lisbon", "startDate": "2025-06-01", "endDate": "2025-06-02"}
	tests := []struct {
		name string
		body any
		err  error
		want int
	}{
		{"missing fields", map[string]any{"userId": "u1"}, nil, http.StatusBadRequest},
		{"bad range", valid, planner.ErrInvalidDateRange, http.StatusBadRequest},
		{"weather down", valid, fmt.Errorf("%w: %w", planner.ErrWeatherUnavailable, context.DeadlineExceeded), http.StatusBadGateway},
		{"store failure", valid, fmt.Errorf("failed to save itinerary: boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakePlanner{planErr: tt.err})
			w := doJSON(r, http.MethodPost, "/api/itineraries", tt.body)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body)
			}
		})
	}
}

func TestGetItineraryHandler(t *testing.T) {
	r := newTestRouter(&fakePlanner{})
	if w := doJSON(r, http.MethodGet, "/api/itineraries/it-1", nil); w.Code != http.StatusOK {
		t.Errorf("found: status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/itineraries/nope", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/api/itineraries/owner/u1", nil); w.Code != http.StatusOK {
		t.Errorf("list: status = %d", w.Code)
	}
}

func TestReserveItineraryHandler(t *testing.T) {
	r := newTestRouter(&fakePlanner{queued: true})
	if w := doJSON(r, http.MethodPost, "/api/itineraries/it-1/reservations", nil); w.Code != http.StatusAccepted {
		t.Errorf("queued: status = %d", w.Code)
	}

	r = newTestRouter(&fakePlanner{})
	if w := doJSON(r, http.MethodPost, "/api/itineraries/it-1/reservations", nil); w.Code != http.StatusOK {
		t.Errorf("inline: status = %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/api/itineraries/nope/reservations", nil); w.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d", w.Code)
	}
}
