package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wayfarer/models"

	"github.com/hibiken/asynq"
)

const TypeReservationProcess = "reservation:process"

// Reservation jobs are retried a few times; the coordinator already falls
// back between providers within one attempt.
const reservationMaxRetry = 3

func NewReservationTask(payload models.ReservationPayload) (*asynq.Task, []asynq.Option, error) {
	if payload.ItineraryID == "" {
		return nil, nil, fmt.Errorf("itinerary id is required")
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReservationProcess, b)
	opts := []asynq.Option{
		asynq.MaxRetry(reservationMaxRetry),
		asynq.Timeout(2 * time.Minute),
	}
	return task, opts, nil
}

// ParseReservationTask decodes a reservation job payload.
func ParseReservationTask(task *asynq.Task) (models.ReservationPayload, error) {
	var p models.ReservationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reservation payload: %w", err)
	}
	if p.ItineraryID == "" {
		return p, fmt.Errorf("invalid reservation payload: missing itinerary id")
	}
	return p, nil
}

// Enqueuer is the subset of *asynq.Client used to schedule jobs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqReservationQueue schedules reservation jobs on the redis-backed queue.
type AsynqReservationQueue struct {
	Client Enqueuer
	Now    func() time.Time
}

func NewAsynqReservationQueue(client Enqueuer) *AsynqReservationQueue {
	return &AsynqReservationQueue{Client: client, Now: time.Now}
}

func (q *AsynqReservationQueue) EnqueueReservations(ctx context.Context, itineraryID string) error {
	now := time.Now
	if q.Now != nil {
		now = q.Now
	}
	task, opts, err := NewReservationTask(models.ReservationPayload{
		ItineraryID: itineraryID,
		RequestedAt: now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeReservationProcess, err)
	}
	return nil
}
