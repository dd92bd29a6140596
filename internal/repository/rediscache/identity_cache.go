package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/horsesharing/backend/internal/infrastructure/kinde"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

type identityCache struct {
	client *redis.Client
}

func NewIdentityCache(client *redis.Client) repository.IdentityCache {
	return &identityCache{client: client}
}

// Tokens are hashed before use as keys so raw credentials never end up
// in the cache.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "identity:" + hex.EncodeToString(sum[:])
}

func (c *identityCache) Get(ctx context.Context, token string) (*kinde.Claims, error) {
	data, err := c.client.Get(ctx, cacheKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var claims kinde.Claims
	if err := json.Unmarshal(data, &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}

func (c *identityCache) Set(ctx context.Context, token string, claims *kinde.Claims, ttl time.Duration) error {
	data, err := json.Marshal(claims)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(token), data, ttl).Err()
}
