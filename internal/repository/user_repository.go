package repository

import (
	"context"

	"github.com/horsesharing/backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByKindeID(ctx context.Context, kindeID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	SetOnboarding(ctx context.Context, userID int, completed bool, profileType domain.ProfileType) error
}
