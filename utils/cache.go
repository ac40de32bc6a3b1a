// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"wayfarer/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client, used for weather forecasts.
	CacheClient *redis.Client
	// QueueClient points at the database backing the reservation queue.
	QueueClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
}

func ping(client *redis.Client, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB)
	ping(CacheClient, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitQueueClient initializes the Redis client used for queue health checks.
func InitQueueClient() {
	QueueClient = newRedisClient(config.AppConfig.RedisQueueDB)
	ping(QueueClient, "Queue")
}

// GetQueueClient returns the queue Redis client.
func GetQueueClient() *redis.Client {
	if QueueClient == nil {
		InitQueueClient()
	}
	return QueueClient
}
