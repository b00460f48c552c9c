package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository.session")

// SessionRepository defines the interface for server-side session data.
type SessionRepository interface {
	Create(ctx context.Context, id string, userID int64, ttl time.Duration) error
	FindUserID(ctx context.Context, id string) (userID int64, found bool, err error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type redisSessionRepository struct {
	rdb *redis.Client
}

// NewSessionRepository creates a new Redis-based SessionRepository.
func NewSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{
		rdb: rdb,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Create stores a new session hash that expires after ttl.
func (r *redisSessionRepository) Create(ctx context.Context, id string, userID int64, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Create")
	defer span.End()

	key := sessionKey(id)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key, "user_id", userID, "created_at", time.Now().Unix())
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// FindUserID resolves a session id. Expired and unknown sessions are not found.
func (r *redisSessionRepository) FindUserID(ctx context.Context, id string) (int64, bool, error) {
	ctx, span := tracer.Start(ctx, "SessionRepository.FindUserID")
	defer span.End()

	raw, err := r.rdb.HGet(ctx, sessionKey(id), "user_id").Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session %s: %w", id, err)
	}
	return userID, true, nil
}

// Touch extends the expiry of an active session.
func (r *redisSessionRepository) Touch(ctx context.Context, id string, ttl time.Duration) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Touch")
	defer span.End()

	return r.rdb.Expire(ctx, sessionKey(id), ttl).Err()
}

// Delete removes a session, typically on logout.
func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Delete")
	defer span.End()

	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
