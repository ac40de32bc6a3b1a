package reservation

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"wayfarer/models"
)

func TestSimulatedFallback_RollBoundary(t *testing.T) {
	tests := []struct {
		roll float64
		want bool
	}{
		{0, true},
		{0.85, true},
		{0.851, false},
		{0.99, false},
	}
	for _, tt := range tests {
		b := &SimulatedFallbackBooker{SuccessRate: 0.85, Roll: func() float64 { return tt.roll }}
		res, err := b.Attempt(context.Background(), FallbackRequest{ActivityName: "Dinner", DesiredTime: "2025-06-01T19:30"})
		if err != nil {
			t.Fatal(err)
		}
		if res.Success != tt.want {
			t.Errorf("roll %v: success = %v, want %v", tt.roll, res.Success, tt.want)
		}
		if res.Success && !strings.HasPrefix(res.ReservationID, "AI-") {
			t.Errorf("reservation id = %q", res.ReservationID)
		}
		if !res.Success && res.Reason == "" {
			t.Error("denial without reason")
		}
	}
}

func TestSimulatedFallback_SuccessRate(t *testing.T) {
	const runs = 1000
	b := NewSimulatedFallbackBooker(DefaultFallbackSuccessRate, 0)

	ok := 0
	for i := 0; i < runs; i++ {
		res, err := b.Attempt(context.Background(), FallbackRequest{ActivityName: "Lunch"})
		if err != nil {
			t.Fatal(err)
		}
		if res.Success {
			ok++
		}
	}
	rate := float64(ok) / runs
	if math.Abs(rate-DefaultFallbackSuccessRate) > 0.05 {
		t.Errorf("observed success rate %.3f, want %.2f ± 0.05", rate, DefaultFallbackSuccessRate)
	}
}

func TestReserve_FallbackSuccessRateThroughCoordinator(t *testing.T) {
	const runs = 1000
	primary := denyPrimary()
	c := &Coordinator{
		Primary:  primary,
		Fallback: NewSimulatedFallbackBooker(DefaultFallbackSuccessRate, 0),
	}

	ok := 0
	for i := 0; i < runs; i++ {
		out, err := c.Reserve(context.Background(), dinnerRequest())
		if err != nil {
			t.Fatal(err)
		}
		switch {
		case out.Success:
			if out.Provider != models.ProviderFallback || out.ConfirmationID == "" {
				t.Fatalf("success outcome %+v", out)
			}
			ok++
		case out.Status != models.ReservationFailed || out.FailureReason != ReasonNoAvailability:
			t.Fatalf("failure outcome %+v", out)
		}
	}
	if got := primary.calls.Load(); got != runs {
		t.Errorf("primary called %d times, want %d", got, runs)
	}
	rate := float64(ok) / runs
	if math.Abs(rate-DefaultFallbackSuccessRate) > 0.05 {
		t.Errorf("observed success rate %.3f, want %.2f ± 0.05", rate, DefaultFallbackSuccessRate)
	}
}

func TestSimulatedFallback_DelayHonoursContext(t *testing.T) {
	b := NewSimulatedFallbackBooker(1, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := b.Attempt(ctx, FallbackRequest{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if time.Since(start) > time.Second {
		t.Error("attempt did not stop at the deadline")
	}
}

func TestCoordinator_FallbackTimeoutFails(t *testing.T) {
	c := &Coordinator{
		Primary:         denyPrimary(),
		Fallback:        NewSimulatedFallbackBooker(1, time.Hour),
		FallbackTimeout: 10 * time.Millisecond,
	}
	out, err := c.Reserve(context.Background(), dinnerRequest())
	if err != nil {
		t.Fatal(err)
	}
	if out.Success || out.FailureReason != ReasonNoAvailability {
		t.Errorf("outcome = %+v", out)
	}
}
