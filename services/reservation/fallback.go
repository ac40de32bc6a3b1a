package reservation

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultFallbackSuccessRate = 0.85
	DefaultFallbackDelay       = 2 * time.Second
)

// SimulatedFallbackBooker stands in for an assistant-driven booking channel:
// after a processing delay it succeeds when a uniform roll in [0,1) is at most
// SuccessRate.
type SimulatedFallbackBooker struct {
	SuccessRate float64
	Delay       time.Duration
	// Roll replaces the random source in tests. It must be safe for
	// concurrent use.
	Roll func() float64
}

func NewSimulatedFallbackBooker(successRate float64, delay time.Duration) *SimulatedFallbackBooker {
	return &SimulatedFallbackBooker{SuccessRate: successRate, Delay: delay}
}

func (b *SimulatedFallbackBooker) Attempt(ctx context.Context, req FallbackRequest) (FallbackResult, error) {
	if b.Delay > 0 {
		timer := time.NewTimer(b.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return FallbackResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	roll := rand.Float64
	if b.Roll != nil {
		roll = b.Roll
	}
	if roll() <= b.SuccessRate {
		return FallbackResult{Success: true, ReservationID: "AI-" + uuid.New().String()}, nil
	}
	return FallbackResult{Reason: "no availability for " + req.ActivityName + " at " + req.DesiredTime}, nil
}
