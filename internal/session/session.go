// Package session keeps login sessions in Redis: an opaque session id maps to
// the id of the user who logged in, and expires after a fixed TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homeRental/internal/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found")

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "session.NewRedisClient"

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: failed to connect to redis: %w", op, err)
	}

	return client, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, userID string) (string, error) {
	const op = "session.RedisStore.Create"

	id := uuid.NewString()

	if err := s.client.Set(ctx, keyPrefix+id, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	const op = "session.RedisStore.Get"

	if sessionID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	userID, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	const op = "session.RedisStore.Delete"

	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
