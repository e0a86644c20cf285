package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("session")

type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed session store. Expiry is enforced by
// the key TTL, so expired sessions vanish without any sweeper.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create stores a new session under a fresh token with the configured TTL.
func (s *redisStore) Create(ctx context.Context, userID int64) (string, error) {
	ctx, span := tracer.Start(ctx, "SessionStore.Create")
	defer span.End()

	token, err := newToken()
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, sessionKey(token), strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session in redis: %w", err)
	}
	return token, nil
}

// Get resolves a token to its user id.
func (s *redisStore) Get(ctx context.Context, token string) (int64, error) {
	ctx, span := tracer.Start(ctx, "SessionStore.Get")
	defer span.End()

	val, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get session from redis: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session record: %w", err)
	}
	return userID, nil
}

// Destroy removes the session. Idempotent.
func (s *redisStore) Destroy(ctx context.Context, token string) error {
	ctx, span := tracer.Start(ctx, "SessionStore.Destroy")
	defer span.End()

	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
