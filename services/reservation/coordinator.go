package reservation

import (
	"context"
	"errors"
	"time"

	"wayfarer/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPrimaryTimeout  = 3 * time.Second
	DefaultFallbackTimeout = 5 * time.Second
	DefaultParallelism     = 4
)

// Coordinator runs the two-stage booking protocol: primary first, fallback on
// any primary denial, error or timeout. It is safe for concurrent use.
type Coordinator struct {
	Primary         PrimaryBooker
	Fallback        FallbackBooker
	PrimaryTimeout  time.Duration
	FallbackTimeout time.Duration
	Parallelism     int
	Logger          *zap.Logger
}

func (c *Coordinator) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func durationOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

func validateRequest(req Request) error {
	a := req.Activity
	switch {
	case a.Name == "":
		return invalidRequest("activity %q has no name", a.ID)
	case a.StartTime == "":
		return invalidRequest("activity %q has no start time", a.ID)
	case a.Venue.Name == "":
		return invalidRequest("activity %q has no venue", a.ID)
	case req.Location == "":
		return invalidRequest("activity %q has no location", a.ID)
	}
	return nil
}

func desiredTime(req Request) string {
	if req.Date == "" {
		return req.Activity.StartTime
	}
	return req.Date + "T" + req.Activity.StartTime
}

// Reserve books one activity. Activities that need no reservation return a
// not_required outcome without contacting either booker. The only error
// returns are ErrInvalidReservationRequest and the caller's context error.
func (c *Coordinator) Reserve(ctx context.Context, req Request) (models.ReservationOutcome, error) {
	activity := req.Activity
	if !activity.ReservationRequired {
		return models.ReservationOutcome{
			ActivityRef:   activity.ID,
			Status:        models.ReservationNotRequired,
			FailureReason: ReasonNotRequired,
		}, nil
	}
	if err := validateRequest(req); err != nil {
		return models.ReservationOutcome{}, err
	}

	log := c.logger().With(zap.String("activity", activity.ID), zap.String("location", req.Location))
	when := desiredTime(req)

	if c.Primary != nil {
		if id, ok := c.attemptPrimary(ctx, activity, when, log); ok {
			return confirmed(activity.ID, models.ProviderPrimary, id), nil
		}
	}
	if err := ctx.Err(); err != nil {
		return cancelled(activity.ID), err
	}

	if c.Fallback != nil {
		if id, ok := c.attemptFallback(ctx, req, when, log); ok {
			return confirmed(activity.ID, models.ProviderFallback, id), nil
		}
	}
	if err := ctx.Err(); err != nil {
		return cancelled(activity.ID), err
	}

	log.Warn("reservation failed on all channels")
	return models.ReservationOutcome{
		ActivityRef:   activity.ID,
		Status:        models.ReservationFailed,
		FailureReason: ReasonNoAvailability,
	}, nil
}

func (c *Coordinator) attemptPrimary(ctx context.Context, activity models.Activity, when string, log *zap.Logger) (string, bool) {
	pctx, cancel := context.WithTimeout(ctx, durationOr(c.PrimaryTimeout, DefaultPrimaryTimeout))
	defer cancel()

	res, err := c.Primary.Attempt(pctx, activity, when)
	if err != nil {
		log.Info("primary booking unavailable", zap.Error(err))
		return "", false
	}
	if !res.Success {
		log.Info("primary booking denied")
		return "", false
	}
	if res.ConfirmationID == "" {
		res.ConfirmationID = uuid.New().String()
	}
	return res.ConfirmationID, true
}

func (c *Coordinator) attemptFallback(ctx context.Context, req Request, when string, log *zap.Logger) (string, bool) {
	fctx, cancel := context.WithTimeout(ctx, durationOr(c.FallbackTimeout, DefaultFallbackTimeout))
	defer cancel()

	res, err := c.Fallback.Attempt(fctx, FallbackRequest{
		ActivityType: string(req.Activity.Category),
		ActivityName: req.Activity.Name,
		DesiredTime:  when,
		Location:     req.Location,
		Preferences:  req.Preferences,
	})
	if err != nil {
		log.Info("fallback booking error", zap.Error(err))
		return "", false
	}
	if !res.Success {
		log.Info("fallback booking denied", zap.String("reason", res.Reason))
		return "", false
	}
	// Each outcome gets its own identifier; a fallback that returns none is
	// given a random one rather than a shared sequence.
	if res.ReservationID == "" {
		res.ReservationID = uuid.New().String()
	}
	return res.ReservationID, true
}

func confirmed(ref string, provider models.BookingProvider, id string) models.ReservationOutcome {
	return models.ReservationOutcome{
		ActivityRef:    ref,
		Status:         models.ReservationConfirmed,
		Success:        true,
		ConfirmationID: id,
		Provider:       provider,
	}
}

func cancelled(ref string) models.ReservationOutcome {
	return models.ReservationOutcome{
		ActivityRef:   ref,
		Status:        models.ReservationPending,
		FailureReason: ReasonCancelled,
	}
}

// ReserveItinerary attempts every reservable activity concurrently, bounded by
// Parallelism, and writes each outcome back onto its activity. Outcomes are
// returned in itinerary order; the order attempts finish in is unspecified.
func (c *Coordinator) ReserveItinerary(ctx context.Context, itinerary *models.Itinerary) []models.ReservationOutcome {
	type target struct {
		activity *models.Activity
		date     string
	}
	var targets []target
	for d := range itinerary.Days {
		day := &itinerary.Days[d]
		for a := range day.Activities {
			act := &day.Activities[a]
			if act.ReservationRequired && act.ReservationStatus != models.ReservationConfirmed {
				act.ReservationStatus = models.ReservationPending
				targets = append(targets, target{activity: act, date: day.Date})
			}
		}
	}

	outcomes := make([]models.ReservationOutcome, len(targets))
	limit := c.Parallelism
	if limit <= 0 {
		limit = DefaultParallelism
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, t := range targets {
		g.Go(func() error {
			outcome, err := c.Reserve(gctx, Request{
				Activity:    *t.activity,
				Date:        t.date,
				Location:    itinerary.Location,
				Preferences: itinerary.Preferences,
			})
			if errors.Is(err, ErrInvalidReservationRequest) {
				outcome = models.ReservationOutcome{
					ActivityRef:   t.activity.ID,
					Status:        models.ReservationFailed,
					FailureReason: err.Error(),
				}
			}
			t.activity.ReservationStatus = outcome.Status
			t.activity.Reservation = &outcome
			outcomes[i] = outcome
			// Per-activity failures never abort the group.
			return nil
		})
	}
	_ = g.Wait()

	c.logger().Info("itinerary reservations finished",
		zap.String("itinerary", itinerary.ID),
		zap.Int("attempted", len(targets)),
		zap.Int("confirmed", countConfirmed(outcomes)))
	return outcomes
}

func countConfirmed(outcomes []models.ReservationOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Success {
			n++
		}
	}
	return n
}
