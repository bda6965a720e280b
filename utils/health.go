package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for {
			snapshot := HealthStatus{CheckedAt: time.Now()}

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if mongoClient != nil {
				snapshot.Mongo = mongoClient.Ping(ctx, nil) == nil
			}
			for _, client := range redisClients {
				snapshot.Redis = append(snapshot.Redis, client.Ping(ctx).Err() == nil)
			}
			cancel()

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()

			<-ticker.C
		}
	}()
}
