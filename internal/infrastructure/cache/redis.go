package cache

import (
	"context"
	"fmt"
	"time"

	"wellbeing-client/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 3 * time.Second

// NewRedisClient connects to the shared session store and verifies it answers.
func NewRedisClient(ctx context.Context, log *logrus.Logger, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Debugf("Connected to Redis at %s:%s (db %d)", cfg.Host, cfg.Port, cfg.DB)

	return client, nil
}
