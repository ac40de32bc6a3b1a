package planner

import (
	"context"
	"fmt"
	"time"

	"wayfarer/models"

	"go.uber.org/zap"
)

// DefaultPlannerService wires the pipeline to its collaborators. Summarizer,
// Reservations and Queue are optional.
type DefaultPlannerService struct {
	Preferences  PreferenceStore
	Weather      WeatherSource
	Events       EventsSource
	Store        ItineraryStore
	Reservations Reserver
	Queue        ReservationQueue
	Summarizer   Summarizer
	Logger       *zap.Logger
	Now          func() time.Time
}

func (s *DefaultPlannerService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultPlannerService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

func validatePlanRequest(req PlanRequest) error {
	if req.UserID == "" {
		return newPlanningError(ErrInvalidPlanRequest, "userId is required")
	}
	if req.Location == "" {
		return newPlanningError(ErrInvalidPlanRequest, "location is required")
	}
	if req.Reserve && req.ReserveAsync {
		return newPlanningError(ErrInvalidPlanRequest, "reserve and reserveAsync are mutually exclusive")
	}
	_, err := DateRange(req.StartDate, req.EndDate)
	return err
}

// PlanTrip loads collaborators, generates the itinerary, optionally reserves
// inline or queues reservations, and saves the result.
func (s *DefaultPlannerService) PlanTrip(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}
	if req.Reserve && s.Reservations == nil {
		return nil, newPlanningError(ErrInvalidPlanRequest, "inline reservations are not available")
	}
	if req.ReserveAsync && s.Queue == nil {
		return nil, newPlanningError(ErrInvalidPlanRequest, "queued reservations are not available")
	}
	log := s.logger().With(zap.String("user", req.UserID), zap.String("location", req.Location))

	profile, feedback, err := s.loadPreferences(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	forecast, err := s.Weather.GetForecast(ctx, req.Location, req.StartDate, req.EndDate)
	if err != nil {
		log.Error("weather source failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrWeatherUnavailable, err)
	}

	var events []models.EventCandidate
	if s.Events != nil {
		events, err = s.Events.GetEvents(ctx, req.Location, req.StartDate, req.EndDate)
		if err != nil {
			log.Error("events source failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrEventsUnavailable, err)
		}
	}

	itinerary, err := Generate(GenerateRequest{
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		OwnerID:   req.UserID,
		Profile:   profile,
		Feedback:  feedback,
		Forecast:  forecast,
		Events:    events,
	})
	if err != nil {
		return nil, err
	}
	itinerary.CreatedAt = s.now()

	result := &PlanResult{Itinerary: itinerary}
	if req.Reserve {
		result.Reservations = s.Reservations.ReserveItinerary(ctx, itinerary)
	}

	if s.Summarizer != nil {
		summary, err := s.Summarizer.Summarize(ctx, itinerary)
		if err != nil {
			log.Warn("itinerary summary skipped", zap.Error(err))
		} else {
			itinerary.Summary = summary
		}
	}

	id, err := s.Store.Save(ctx, itinerary)
	if err != nil {
		return nil, fmt.Errorf("failed to save itinerary: %w", err)
	}
	itinerary.ID = id

	if req.ReserveAsync {
		if err := s.Queue.EnqueueReservations(ctx, id); err != nil {
			log.Error("failed to queue reservations", zap.String("itinerary", id), zap.Error(err))
			return nil, fmt.Errorf("failed to queue reservations: %w", err)
		}
		result.Queued = true
	}

	log.Info("itinerary generated",
		zap.String("itinerary", id),
		zap.Int("days", len(itinerary.Days)),
		zap.Float64("totalCost", itinerary.TotalCost))
	return result, nil
}

func (s *DefaultPlannerService) loadPreferences(ctx context.Context, userID string) (models.PreferenceProfile, models.FeedbackSet, error) {
	stored, err := s.Preferences.GetProfile(ctx, userID)
	if err != nil {
		return models.PreferenceProfile{}, nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	profile := models.DefaultProfile(userID)
	if stored != nil {
		profile = *stored
	}

	feedback, err := s.Preferences.GetRecentFeedback(ctx, userID)
	if err != nil {
		return models.PreferenceProfile{}, nil, fmt.Errorf("failed to load feedback: %w", err)
	}
	return profile, feedback, nil
}

// ReserveStored runs reservations for a saved itinerary and persists the
// updated activity statuses.
func (s *DefaultPlannerService) ReserveStored(ctx context.Context, itineraryID string) ([]models.ReservationOutcome, error) {
	itinerary, err := s.Store.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}
	return s.reserveAndStore(ctx, itinerary)
}

func (s *DefaultPlannerService) reserveAndStore(ctx context.Context, itinerary *models.Itinerary) ([]models.ReservationOutcome, error) {
	if s.Reservations == nil {
		return nil, fmt.Errorf("reservations are not configured")
	}
	outcomes := s.Reservations.ReserveItinerary(ctx, itinerary)
	if err := s.Store.UpdateDays(ctx, itinerary.ID, itinerary.Days); err != nil {
		return outcomes, fmt.Errorf("%w: itinerary %s: %w", ErrOutcomesNotStored, itinerary.ID, err)
	}
	return outcomes, nil
}

// RequestReservations queues reservations for a saved itinerary, or runs them
// inline when no queue is configured.
func (s *DefaultPlannerService) RequestReservations(ctx context.Context, itineraryID string) (*PlanResult, error) {
	itinerary, err := s.Store.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, err
	}

	if s.Queue == nil {
		outcomes, err := s.reserveAndStore(ctx, itinerary)
		if err != nil {
			return nil, err
		}
		return &PlanResult{Itinerary: itinerary, Reservations: outcomes}, nil
	}

	if err := s.Queue.EnqueueReservations(ctx, itinerary.ID); err != nil {
		return nil, fmt.Errorf("failed to queue reservations: %w", err)
	}
	return &PlanResult{Itinerary: itinerary, Queued: true}, nil
}

func (s *DefaultPlannerService) GetItinerary(ctx context.Context, id string) (*models.Itinerary, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *DefaultPlannerService) ListItineraries(ctx context.Context, ownerID string) ([]models.Itinerary, error) {
	return s.Store.ListByOwner(ctx, ownerID)
}
