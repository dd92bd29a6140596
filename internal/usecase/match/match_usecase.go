package match

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
)

const defaultPageSize = 50

// MatchUseCase is a thin CRUD surface over stored matches. Nothing here
// computes compatibility; scores are persisted for a future matching pass
// and read back as-is.
type MatchUseCase struct {
	matchRepo repository.MatchRepository
	riderRepo repository.RiderRepository
	ownerRepo repository.OwnerRepository
	horseRepo repository.HorseRepository
	log       *logrus.Logger
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	riderRepo repository.RiderRepository,
	ownerRepo repository.OwnerRepository,
	horseRepo repository.HorseRepository,
	log *logrus.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		riderRepo: riderRepo,
		ownerRepo: ownerRepo,
		horseRepo: horseRepo,
		log:       log,
	}
}

// ListMine returns the caller's matches: by rider profile when one exists,
// otherwise pooled across the horse ads of the caller's owner profile.
func (uc *MatchUseCase) ListMine(ctx context.Context, user *domain.User) ([]*domain.Match, error) {
	rider, err := uc.riderRepo.GetByUserID(ctx, user.ID)
	if err == nil {
		return uc.matchRepo.ListByRiderProfileID(ctx, rider.ID, defaultPageSize, 0)
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	owner, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return []*domain.Match{}, nil
	}
	if err != nil {
		return nil, err
	}

	horses, err := uc.horseRepo.ListByOwnerProfileID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	out := []*domain.Match{}
	for _, h := range horses {
		matches, err := uc.matchRepo.ListByHorseProfileID(ctx, h.ID, defaultPageSize, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	return out, nil
}

// SetStatus updates a match's lifecycle status after checking the caller
// participates in it on either side.
func (uc *MatchUseCase) SetStatus(ctx context.Context, user *domain.User, matchID int, status string) (*domain.Match, error) {
	s := domain.MatchStatus(status)
	switch s {
	case domain.MatchStatusPending, domain.MatchStatusActive, domain.MatchStatusPaused, domain.MatchStatusEnded:
	default:
		return nil, domain.ErrInvalidInput
	}

	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	ok, err := uc.participates(ctx, user, m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotProfileOwner
	}

	if err := uc.matchRepo.UpdateStatus(ctx, matchID, s); err != nil {
		return nil, err
	}
	m.Status = s
	uc.log.WithFields(logrus.Fields{
		"match_id": matchID,
		"status":   s,
	}).Info("match status updated")
	return m, nil
}

func (uc *MatchUseCase) participates(ctx context.Context, user *domain.User, m *domain.Match) (bool, error) {
	if rider, err := uc.riderRepo.GetByUserID(ctx, user.ID); err == nil {
		if rider.ID == m.RiderProfileID {
			return true, nil
		}
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return false, err
	}

	owner, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	horse, err := uc.horseRepo.GetByID(ctx, m.HorseProfileID)
	if err != nil {
		return false, err
	}
	return horse.OwnerProfileID == owner.ID, nil
}
