package repository

import (
	"context"

	"github.com/horsesharing/backend/internal/domain"
)

type HorseRepository interface {
	Create(ctx context.Context, horse *domain.HorseProfile) error
	GetByID(ctx context.Context, id int) (*domain.HorseProfile, error)
	ListByOwnerProfileID(ctx context.Context, ownerProfileID int) ([]*domain.HorseProfile, error)
	Update(ctx context.Context, horse *domain.HorseProfile) error
	Delete(ctx context.Context, id int) error
}
