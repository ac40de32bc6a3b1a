package cron

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"wayfarer/database/repository"
	"wayfarer/models"
	"wayfarer/services/planner"
	"wayfarer/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type fakeReserver struct {
	ids []string
	err error
}

func (f *fakeReserver) ReserveStored(_ context.Context, id string) ([]models.ReservationOutcome, error) {
	f.ids = append(f.ids, id)
	return []models.ReservationOutcome{{ActivityRef: "a", Success: true}}, f.err
}

func reservationTask(t *testing.T, id string) *asynq.Task {
	t.Helper()
	task, _, err := tasks.NewReservationTask(models.ReservationPayload{ItineraryID: id})
	if err != nil {
		t.Fatal(err)
	}
	return task
}

func TestHandleReservationTask(t *testing.T) {
	r := &fakeReserver{}
	h := HandleReservationTask(r, zap.NewNop())
	if err := h(context.Background(), reservationTask(t, "it-1")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(r.ids) != 1 || r.ids[0] != "it-1" {
		t.Errorf("reserved ids = %v", r.ids)
	}
}

func TestHandleReservationTask_Errors(t *testing.T) {
	tests := []struct {
		name      string
		task      *asynq.Task
		err       error
		skipRetry bool
	}{
		{"bad payload", asynq.NewTask(tasks.TypeReservationProcess, []byte("nope")), nil, true},
		{"unknown itinerary", reservationTask(t, "gone"), repository.ErrItineraryNotFound, true},
		{"transient", reservationTask(t, "it-1"), errors.New("mongo timeout"), false},
		{"outcomes not stored", reservationTask(t, "it-1"), fmt.Errorf("%w: write timeout", planner.ErrOutcomesNotStored), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HandleReservationTask(&fakeReserver{err: tt.err}, zap.NewNop())
			err := h(context.Background(), tt.task)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, asynq.SkipRetry); got != tt.skipRetry {
				t.Errorf("SkipRetry = %v, want %v (err %v)", got, tt.skipRetry, err)
			}
		})
	}
}
