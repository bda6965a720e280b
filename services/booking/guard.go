package booking

import (
	"context"

	"festivo/utils"

	"github.com/go-redis/redis/v8"
)

// CommitGuard serializes commits per session. One decision/commit cycle
// runs to completion before the next is accepted; two commits must never
// race on the same plan.
type CommitGuard interface {
	Acquire(ctx context.Context, sessionID string) (bool, error)
	Release(ctx context.Context, sessionID string) error
}

type redisCommitGuard struct {
	client *redis.Client
}

// NewRedisCommitGuard returns a CommitGuard backed by a Redis lock key.
// The TTL bounds how long a crashed commit can wedge its session.
func NewRedisCommitGuard(client *redis.Client) CommitGuard {
	return &redisCommitGuard{client: client}
}

func (g *redisCommitGuard) Acquire(ctx context.Context, sessionID string) (bool, error) {
	return g.client.SetNX(ctx, utils.CommitLockPrefix+sessionID, "1", utils.CommitLockTTL).Result()
}

func (g *redisCommitGuard) Release(ctx context.Context, sessionID string) error {
	return g.client.Del(ctx, utils.CommitLockPrefix+sessionID).Err()
}
