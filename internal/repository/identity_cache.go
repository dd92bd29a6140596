package repository

import (
	"context"
	"time"

	"github.com/horsesharing/backend/internal/infrastructure/kinde"
)

// IdentityCache stores resolved bearer-token identities for a short while
// so the identity provider is not consulted on every request.
type IdentityCache interface {
	Get(ctx context.Context, token string) (*kinde.Claims, error)
	Set(ctx context.Context, token string, claims *kinde.Claims, ttl time.Duration) error
}
