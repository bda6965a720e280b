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

// SessionStore holds the remaining session-scoped flags: the one-shot
// last-action toast and the "restore modal on return" marker.
type SessionStore interface {
	SetToast(ctx context.Context, sessionID string, toast models.Toast) error
	PopToast(ctx context.Context, sessionID string) (*models.Toast, error)
	SetRestoreFlag(ctx context.Context, sessionID string) error
	PopRestoreFlag(ctx context.Context, sessionID string) (bool, error)
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore returns a SessionStore over the session cache.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) SetToast(ctx context.Context, sessionID string, toast models.Toast) error {
	data, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("failed to marshal toast: %w", err)
	}
	return s.client.Set(ctx, utils.ToastPrefix+sessionID, data, utils.ToastTTL).Err()
}

// PopToast reads and clears the toast in one round trip; it is consumed on
// the next page load and never shown twice, even when two loads race.
func (s *redisSessionStore) PopToast(ctx context.Context, sessionID string) (*models.Toast, error) {
	data, err := s.client.GetDel(ctx, utils.ToastPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read toast: %w", err)
	}

	var toast models.Toast
	if err := json.Unmarshal([]byte(data), &toast); err != nil {
		return nil, fmt.Errorf("failed to parse toast: %w", err)
	}
	return &toast, nil
}

func (s *redisSessionStore) SetRestoreFlag(ctx context.Context, sessionID string) error {
	return s.client.Set(ctx, utils.RestoreModalPrefix+sessionID, "1", utils.SessionStateTTL).Err()
}

func (s *redisSessionStore) PopRestoreFlag(ctx context.Context, sessionID string) (bool, error) {
	key := utils.RestoreModalPrefix + sessionID
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to clear restore flag: %w", err)
	}
	return n > 0, nil
}
