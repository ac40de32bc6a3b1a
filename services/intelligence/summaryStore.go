package intelligence

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"wayfarer/models"

	"github.com/go-redis/redis/v8"
)

const summaryPrefix = "itinerary:summary:"

// RedisSummaryStore caches narratives by itinerary content so regenerating
// the same plan does not call the model again.
type RedisSummaryStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSummaryStore(client *redis.Client, ttl time.Duration) *RedisSummaryStore {
	return &RedisSummaryStore{client: client, ttl: ttl}
}

// Get returns "" with a nil error on a miss.
func (s *RedisSummaryStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, summaryPrefix+key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return data, err
}

func (s *RedisSummaryStore) Set(ctx context.Context, key, summary string) error {
	return s.client.Set(ctx, summaryPrefix+key, summary, s.ttl).Err()
}

// contentKey fingerprints the parts of an itinerary a narrative depends on.
func contentKey(it *models.Itinerary) string {
	h := sha256.New()
	h.Write([]byte(it.Location + "|" + it.StartDate + "|" + it.EndDate))
	for _, day := range it.Days {
		h.Write([]byte("|" + day.Date + ":" + day.Weather.Condition))
		for _, a := range day.Activities {
			h.Write([]byte("," + a.Name + "@" + a.StartTime))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
