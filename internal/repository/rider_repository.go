package repository

import (
	"context"

	"github.com/horsesharing/backend/internal/domain"
)

type RiderRepository interface {
	Create(ctx context.Context, profile *domain.RiderProfile) error
	GetByUserID(ctx context.Context, userID int) (*domain.RiderProfile, error)
	Update(ctx context.Context, profile *domain.RiderProfile) error
	Delete(ctx context.Context, userID int) error
}
