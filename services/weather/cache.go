package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wayfarer/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const forecastPrefix = "weather:forecast:"

// Source is the forecast contract shared with the planner.
type Source interface {
	GetForecast(ctx context.Context, location, startDate, endDate string) ([]models.WeatherDay, error)
}

// CachedSource keeps forecasts in Redis for ttl. Cache failures fall through
// to the wrapped source.
type CachedSource struct {
	source Source
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedSource(source Source, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedSource{source: source, client: client, ttl: ttl, logger: logger}
}

func forecastKey(location, startDate, endDate string) string {
	return fmt.Sprintf("%s%s:%s:%s", forecastPrefix, strings.ToLower(strings.TrimSpace(location)), startDate, endDate)
}

func (c *CachedSource) GetForecast(ctx context.Context, location, startDate, endDate string) ([]models.WeatherDay, error) {
	key := forecastKey(location, startDate, endDate)

	data, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		var days []models.WeatherDay
		if err := json.Unmarshal([]byte(data), &days); err == nil {
			return days, nil
		}
		c.logger.Warn("discarding corrupt forecast cache entry", zap.String("key", key))
	case err != redis.Nil:
		c.logger.Warn("forecast cache read failed", zap.String("key", key), zap.Error(err))
	}

	days, err := c.source.GetForecast(ctx, location, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(days); err == nil {
		if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.logger.Warn("forecast cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return days, nil
}
