package cron

import (
	"context"
	"errors"
	"time"

	"wayfarer/config"
	"wayfarer/database/repository"
	"wayfarer/models"
	"wayfarer/services/planner"
	"wayfarer/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StoredReserver runs reservations for an itinerary that was already saved.
type StoredReserver interface {
	ReserveStored(ctx context.Context, itineraryID string) ([]models.ReservationOutcome, error)
}

// RedisOpt builds the asynq connection from the queue database config.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReservationWorker runs the async reservation worker in background and
// returns the server so the caller can shut it down.
func InitReservationWorker(reserver StoredReserver, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReservationProcess, HandleReservationTask(reserver, logger))

	go monitorRedisConnection(logger)

	go func() {
		logger.Info("starting reservation worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil || errors.Is(err, asynq.ErrServerClosed) {
				return
			}
			logger.Error("reservation worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reservation worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleReservationTask processes one queued itinerary. A missing itinerary,
// or outcomes that could not be stored after booking, are not retried.
func HandleReservationTask(reserver StoredReserver, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseReservationTask(task)
		if err != nil {
			logger.Error("dropping reservation task", zap.Error(err))
			return errors.Join(err, asynq.SkipRetry)
		}

		outcomes, err := reserver.ReserveStored(ctx, p.ItineraryID)
		if errors.Is(err, repository.ErrItineraryNotFound) {
			logger.Warn("reservation task for unknown itinerary", zap.String("itinerary", p.ItineraryID))
			return errors.Join(err, asynq.SkipRetry)
		}
		if errors.Is(err, planner.ErrOutcomesNotStored) {
			// Bookings already went out; a retry would repeat them.
			logger.Error("reservation outcomes lost",
				zap.String("itinerary", p.ItineraryID),
				zap.Int("attempted", len(outcomes)),
				zap.Error(err))
			return errors.Join(err, asynq.SkipRetry)
		}
		if err != nil {
			logger.Error("reservation task failed", zap.String("itinerary", p.ItineraryID), zap.Error(err))
			return err
		}

		confirmed := 0
		for _, o := range outcomes {
			if o.Success {
				confirmed++
			}
		}
		logger.Info("reservation task done",
			zap.String("itinerary", p.ItineraryID),
			zap.Int("attempted", len(outcomes)),
			zap.Int("confirmed", confirmed))
		return nil
	}
}

// monitorRedisConnection pings the queue database to surface failures at runtime.
func monitorRedisConnection(logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()
	for {
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn("queue redis connection lost", zap.Error(err))
		}
		time.Sleep(10 * time.Second)
	}
}
