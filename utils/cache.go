// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"festivo/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (plan snapshots, supplier lookups).
	CacheClient *redis.Client
	// SessionCacheClient holds session-scoped state: replacement contexts,
	// one-shot toast payloads, restore-modal flags and commit locks.
	SessionCacheClient *redis.Client
)

// InitRedis initializes every Redis client the server uses.
func InitRedis() {
	InitCache()
	InitSessionCache()
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
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

// InitSessionCache initializes the Redis client for session-scoped state.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// GetSessionCacheClient returns the Redis client for session-scoped state.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
