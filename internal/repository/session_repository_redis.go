package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const SessionKeyPrefix = "wellbeing:session:"

// redisKV is the part of *redis.Client the session store uses.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisSessionRepository struct {
	client redisKV
	key    string
	ttl    time.Duration
}

// NewRedisSessionRepository keeps the session under SessionKeyPrefix+name so
// several terminals can share one login. A zero ttl keeps it until cleared.
func NewRedisSessionRepository(client *redis.Client, name string, ttl time.Duration) repository.SessionRepository {
	return newRedisSessionRepository(client, name, ttl)
}

func newRedisSessionRepository(client redisKV, name string, ttl time.Duration) *redisSessionRepository {
	return &redisSessionRepository{
		client: client,
		key:    SessionKeyPrefix + name,
		ttl:    ttl,
	}
}

func (r *redisSessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := r.ttl
	// Never keep a session past its token expiry.
	if !session.ExpiresAt.IsZero() {
		if untilExpiry := time.Until(session.ExpiresAt); untilExpiry > 0 && (ttl == 0 || untilExpiry < ttl) {
			ttl = untilExpiry
		}
	}

	if err := r.client.Set(ctx, r.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
