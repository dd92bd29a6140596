package database

import (
	"context"
	"fmt"
	"time"

	"github.com/horsesharing/backend/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redis, which only backs the short-TTL identity
// cache here. Timeouts are kept tight so a slow cache degrades to a Kinde
// round trip rather than stalling requests.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetAddr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     5,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
