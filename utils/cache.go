// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"doctorsportal/config"
)

// CacheClient is the generic cache client. Nil when redis is not configured.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client when REDIS_ADDR is set.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client, nil when disabled.
func GetCacheClient() *redis.Client {
	return CacheClient
}
