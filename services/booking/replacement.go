package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"festivo/models"
	"festivo/utils"

	"github.com/go-redis/redis/v8"
)

// ReplacementStore holds the session-scoped "swap this supplier" context.
// It must survive navigation within a session and never leak past it.
type ReplacementStore interface {
	Get(ctx context.Context, sessionID string) (*models.ReplacementContext, error)
	Put(ctx context.Context, sessionID string, rc models.ReplacementContext) error
	Clear(ctx context.Context, sessionID string) error
}

type redisReplacementStore struct {
	client *redis.Client
}

// NewRedisReplacementStore returns a ReplacementStore over the session
// cache. Entries expire with the session TTL.
func NewRedisReplacementStore(client *redis.Client) ReplacementStore {
	return &redisReplacementStore{client: client}
}

func (s *redisReplacementStore) Get(ctx context.Context, sessionID string) (*models.ReplacementContext, error) {
	data, err := s.client.Get(ctx, utils.ReplacementContextPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read replacement context: %w", err)
	}
	var rc models.ReplacementContext
	if err := json.Unmarshal([]byte(data), &rc); err != nil {
		return nil, fmt.Errorf("failed to parse replacement context: %w", err)
	}
	return &rc, nil
}

func (s *redisReplacementStore) Put(ctx context.Context, sessionID string, rc models.ReplacementContext) error {
	data, err := json.Marshal(rc)
	if err != nil {
		return fmt.Errorf("failed to marshal replacement context: %w", err)
	}
	return s.client.Set(ctx, utils.ReplacementContextPrefix+sessionID, data, utils.SessionStateTTL).Err()
}

func (s *redisReplacementStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.ReplacementContextPrefix+sessionID).Err()
}
