package repository

import (
	"context"

	"github.com/horsesharing/backend/internal/domain"
)

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByPair(ctx context.Context, riderProfileID, horseProfileID int) (*domain.Match, error)
	ListByRiderProfileID(ctx context.Context, riderProfileID int, limit, offset int) ([]*domain.Match, error)
	ListByHorseProfileID(ctx context.Context, horseProfileID int, limit, offset int) ([]*domain.Match, error)
	UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error
	Delete(ctx context.Context, id int) error
}
