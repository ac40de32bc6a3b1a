package reservation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wayfarer/models"

	"github.com/google/go-cmp/cmp"
)

type fakePrimary struct {
	calls   atomic.Int32
	attempt func(ctx context.Context, a models.Activity, when string) (PrimaryResult, error)
}

func (f *fakePrimary) Attempt(ctx context.Context, a models.Activity, when string) (PrimaryResult, error) {
	f.calls.Add(1)
	return f.attempt(ctx, a, when)
}

type fakeFallback struct {
	calls   atomic.Int32
	attempt func(ctx context.Context, req FallbackRequest) (FallbackResult, error)
}

func (f *fakeFallback) Attempt(ctx context.Context, req FallbackRequest) (FallbackResult, error) {
	f.calls.Add(1)
	return f.attempt(ctx, req)
}

func denyPrimary() *fakePrimary {
	return &fakePrimary{attempt: func(context.Context, models.Activity, string) (PrimaryResult, error) {
		return PrimaryResult{Success: false}, nil
	}}
}

func acceptFallback(id string) *fakeFallback {
	return &fakeFallback{attempt: func(context.Context, FallbackRequest) (FallbackResult, error) {
		return FallbackResult{Success: true, ReservationID: id}, nil
	}}
}

func denyFallback() *fakeFallback {
	return &fakeFallback{attempt: func(context.Context, FallbackRequest) (FallbackResult, error) {
		return FallbackResult{Reason: "fully booked"}, nil
	}}
}

func dinner() models.Activity {
	return models.Activity{
		ID:                  "2025-06-01-dinner",
		Name:                "Dinner",
		StartTime:           "19:30",
		EndTime:             "21:00",
		Venue:               models.Venue{Name: "Evening Restaurant", Address: "Lisbon"},
		Category:            models.CategoryFood,
		Cost:                40,
		ReservationRequired: true,
		ReservationStatus:   models.ReservationPending,
	}
}

func dinnerRequest() Request {
	return Request{Activity: dinner(), Date: "2025-06-01", Location: "Lisbon"}
}

func TestReserve_NotRequired(t *testing.T) {
	primary, fallback := denyPrimary(), acceptFallback("AI-1")
	c := &Coordinator{Primary: primary, Fallback: fallback}

	req := dinnerRequest()
	req.Activity.ReservationRequired = false
	req.Activity.Venue = models.Venue{}

	want := models.ReservationOutcome{
		ActivityRef:   "2025-06-01-dinner",
		Status:        models.ReservationNotRequired,
		FailureReason: ReasonNotRequired,
	}
	for i := 0; i < 2; i++ {
		got, err := c.Reserve(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("call %d (-want +got):\n%s", i, diff)
		}
	}
	if primary.calls.Load() != 0 || fallback.calls.Load() != 0 {
		t.Errorf("bookers contacted: primary=%d fallback=%d", primary.calls.Load(), fallback.calls.Load())
	}
}

func TestReserve_PrimarySuccess(t *testing.T) {
	var gotWhen string
	primary := &fakePrimary{attempt: func(_ context.Context, _ models.Activity, when string) (PrimaryResult, error) {
		gotWhen = when
		return PrimaryResult{Success: true, ConfirmationID: "P-42"}, nil
	}}
	fallback := acceptFallback("AI-1")
	c := &Coordinator{Primary: primary, Fallback: fallback}

	got, err := c.Reserve(context.Background(), dinnerRequest())
	if err != nil {
		t.Fatal(err)
	}
	want := models.ReservationOutcome{
		ActivityRef:    "2025-06-01-dinner",
		Status:         models.ReservationConfirmed,
		Success:        true,
		ConfirmationID: "P-42",
		Provider:       models.ProviderPrimary,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if gotWhen != "2025-06-01T19:30" {
		t.Errorf("desired time = %q", gotWhen)
	}
	if fallback.calls.Load() != 0 {
		t.Error("fallback called after primary success")
	}
}

func TestReserve_PrimarySuccessWithoutID(t *testing.T) {
	primary := &fakePrimary{attempt: func(context.Context, models.Activity, string) (PrimaryResult, error) {
		return PrimaryResult{Success: true}, nil
	}}
	c := &Coordinator{Primary: primary}

	a, _ := c.Reserve(context.Background(), dinnerRequest())
	b, _ := c.Reserve(context.Background(), dinnerRequest())
	if a.ConfirmationID == "" || a.ConfirmationID == b.ConfirmationID {
		t.Errorf("confirmation ids = %q, %q; want distinct non-empty", a.ConfirmationID, b.ConfirmationID)
	}
}

func TestReserve_FallsBack(t *testing.T) {
	tests := []struct {
		name    string
		primary *fakePrimary
	}{
		{"denied", denyPrimary()},
		{"error", &fakePrimary{attempt: func(context.Context, models.Activity, string) (PrimaryResult, error) {
			return PrimaryResult{}, errors.New("503")
		}}},
		{"timeout", &fakePrimary{attempt: func(ctx context.Context, _ models.Activity, _ string) (PrimaryResult, error) {
			<-ctx.Done()
			return PrimaryResult{}, ctx.Err()
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FallbackRequest
			fallback := &fakeFallback{attempt: func(_ context.Context, req FallbackRequest) (FallbackResult, error) {
				got = req
				return FallbackResult{Success: true, ReservationID: "AI-7"}, nil
			}}
			c := &Coordinator{Primary: tt.primary, Fallback: fallback, PrimaryTimeout: 20 * time.Millisecond}

			out, err := c.Reserve(context.Background(), dinnerRequest())
			if err != nil {
				t.Fatal(err)
			}
			if !out.Success || out.Provider != models.ProviderFallback || out.ConfirmationID != "AI-7" {
				t.Errorf("outcome = %+v", out)
			}
			want := FallbackRequest{ActivityType: "food", ActivityName: "Dinner", DesiredTime: "2025-06-01T19:30", Location: "Lisbon"}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fallback request (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReserve_AllChannelsFail(t *testing.T) {
	c := &Coordinator{Primary: denyPrimary(), Fallback: denyFallback()}
	got, err := c.Reserve(context.Background(), dinnerRequest())
	if err != nil {
		t.Fatal(err)
	}
	want := models.ReservationOutcome{
		ActivityRef:   "2025-06-01-dinner",
		Status:        models.ReservationFailed,
		FailureReason: ReasonNoAvailability,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReserve_InvalidRequest(t *testing.T) {
	primary := denyPrimary()
	c := &Coordinator{Primary: primary, Fallback: acceptFallback("x")}

	mutations := map[string]func(*Request){
		"no name":     func(r *Request) { r.Activity.Name = "" },
		"no start":    func(r *Request) { r.Activity.StartTime = "" },
		"no venue":    func(r *Request) { r.Activity.Venue.Name = "" },
		"no location": func(r *Request) { r.Location = "" },
	}
	for name, mutate := range mutations {
		req := dinnerRequest()
		mutate(&req)
		if _, err := c.Reserve(context.Background(), req); !errors.Is(err, ErrInvalidReservationRequest) {
			t.Errorf("%s: err = %v", name, err)
		}
	}
	if primary.calls.Load() != 0 {
		t.Error("primary contacted for invalid request")
	}
}

func TestReserve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &fakePrimary{attempt: func(ctx context.Context, _ models.Activity, _ string) (PrimaryResult, error) {
		return PrimaryResult{}, ctx.Err()
	}}
	fallback := acceptFallback("AI-1")
	c := &Coordinator{Primary: primary, Fallback: fallback}

	got, err := c.Reserve(ctx, dinnerRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got.Status != models.ReservationPending || got.Success || got.FailureReason != ReasonCancelled {
		t.Errorf("outcome = %+v", got)
	}
	if fallback.calls.Load() != 0 {
		t.Error("fallback called after cancellation")
	}
}

func testItinerary() *models.Itinerary {
	breakfast := dinner()
	breakfast.ID, breakfast.Name, breakfast.StartTime = "2025-06-01-breakfast", "Breakfast", "08:00"
	park := models.Activity{ID: "2025-06-01-late-morning", Name: "Outdoor Exploration", StartTime: "10:00", ReservationStatus: models.ReservationNotRequired}
	day2Dinner := dinner()
	day2Dinner.ID = "2025-06-02-dinner"
	done := dinner()
	done.ID, done.Name, done.StartTime = "2025-06-02-lunch", "Lunch", "12:30"
	done.ReservationStatus = models.ReservationConfirmed

	return &models.Itinerary{
		ID:       "it-1",
		Location: "Lisbon",
		Days: []models.DayPlan{
			{Date: "2025-06-01", Activities: []models.Activity{breakfast, park, dinner()}},
			{Date: "2025-06-02", Activities: []models.Activity{done, day2Dinner}},
		},
	}
}

func TestReserveItinerary(t *testing.T) {
	primary := &fakePrimary{attempt: func(_ context.Context, a models.Activity, _ string) (PrimaryResult, error) {
		if a.Name == "Breakfast" {
			return PrimaryResult{Success: true, ConfirmationID: "P-" + a.ID}, nil
		}
		return PrimaryResult{}, nil
	}}
	var mu sync.Mutex
	var dates []string
	fallback := &fakeFallback{attempt: func(_ context.Context, req FallbackRequest) (FallbackResult, error) {
		mu.Lock()
		dates = append(dates, req.DesiredTime)
		mu.Unlock()
		if req.DesiredTime == "2025-06-02T19:30" {
			return FallbackResult{Reason: "fully booked"}, nil
		}
		return FallbackResult{Success: true, ReservationID: "AI-" + req.DesiredTime}, nil
	}}
	c := &Coordinator{Primary: primary, Fallback: fallback, Parallelism: 2}

	it := testItinerary()
	outcomes := c.ReserveItinerary(context.Background(), it)

	want := []models.ReservationOutcome{
		{ActivityRef: "2025-06-01-breakfast", Status: models.ReservationConfirmed, Success: true, ConfirmationID: "P-2025-06-01-breakfast", Provider: models.ProviderPrimary},
		{ActivityRef: "2025-06-01-dinner", Status: models.ReservationConfirmed, Success: true, ConfirmationID: "AI-2025-06-01T19:30", Provider: models.ProviderFallback},
		{ActivityRef: "2025-06-02-dinner", Status: models.ReservationFailed, FailureReason: ReasonNoAvailability},
	}
	if diff := cmp.Diff(want, outcomes); diff != "" {
		t.Errorf("outcomes (-want +got):\n%s", diff)
	}

	day1 := it.Days[0].Activities
	if day1[0].ReservationStatus != models.ReservationConfirmed || day1[0].Reservation == nil {
		t.Errorf("breakfast not written back: %+v", day1[0])
	}
	if day1[1].ReservationStatus != models.ReservationNotRequired || day1[1].Reservation != nil {
		t.Errorf("park touched: %+v", day1[1])
	}
	day2 := it.Days[1].Activities
	if day2[0].Reservation != nil {
		t.Error("already confirmed lunch was re-attempted")
	}
	if day2[1].ReservationStatus != models.ReservationFailed {
		t.Errorf("day 2 dinner status = %s", day2[1].ReservationStatus)
	}
	if len(dates) != 2 {
		t.Errorf("fallback attempts = %v, want 2", dates)
	}
}

func TestReserveItinerary_BoundedParallelism(t *testing.T) {
	var inFlight, peak atomic.Int32
	primary := &fakePrimary{attempt: func(context.Context, models.Activity, string) (PrimaryResult, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		return PrimaryResult{Success: true, ConfirmationID: "P"}, nil
	}}
	c := &Coordinator{Primary: primary, Parallelism: 2}

	it := &models.Itinerary{Location: "Lisbon"}
	day := models.DayPlan{Date: "2025-06-01"}
	for i := 0; i < 8; i++ {
		a := dinner()
		a.ID = a.ID + string(rune('a'+i))
		day.Activities = append(day.Activities, a)
	}
	it.Days = []models.DayPlan{day}

	outcomes := c.ReserveItinerary(context.Background(), it)
	if len(outcomes) != 8 {
		t.Fatalf("got %d outcomes", len(outcomes))
	}
	if got := peak.Load(); got > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", got)
	}
}

func TestReserveItinerary_InvalidActivityBecomesFailure(t *testing.T) {
	c := &Coordinator{Primary: denyPrimary(), Fallback: acceptFallback("AI-1")}
	it := testItinerary()
	it.Days[0].Activities[0].Venue = models.Venue{}

	outcomes := c.ReserveItinerary(context.Background(), it)
	first := outcomes[0]
	if first.Success || first.Status != models.ReservationFailed {
		t.Errorf("invalid activity outcome = %+v", first)
	}
	if !strings.Contains(first.FailureReason, ErrInvalidReservationRequest.Error()) {
		t.Errorf("failure reason = %q", first.FailureReason)
	}
	if !outcomes[1].Success {
		t.Errorf("valid activity outcome = %+v", outcomes[1])
	}
}
