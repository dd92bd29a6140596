package repository

import (
	"context"

	"github.com/horsesharing/backend/internal/domain"
)

type OwnerRepository interface {
	Create(ctx context.Context, profile *domain.OwnerProfile) error
	GetByUserID(ctx context.Context, userID int) (*domain.OwnerProfile, error)
	Update(ctx context.Context, profile *domain.OwnerProfile) error
	Delete(ctx context.Context, userID int) error
}
