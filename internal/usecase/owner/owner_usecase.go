package owner

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
)

// ContactUpdater persists contact changes on the user record and pushes
// them to the identity provider.
type ContactUpdater interface {
	UpdateContact(ctx context.Context, user *domain.User, firstName, lastName, phone string) error
}

type OwnerUseCase struct {
	ownerRepo repository.OwnerRepository
	contacts  ContactUpdater
	log       *logrus.Logger
}

func NewOwnerUseCase(ownerRepo repository.OwnerRepository, contacts ContactUpdater, log *logrus.Logger) *OwnerUseCase {
	return &OwnerUseCase{
		ownerRepo: ownerRepo,
		contacts:  contacts,
		log:       log,
	}
}

// Get returns the caller's owner profile as the client read-model.
func (uc *OwnerUseCase) Get(ctx context.Context, user *domain.User) (*OwnerProfileView, error) {
	profile, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return newOwnerProfileView(profile, user), nil
}

// Save upserts the caller's owner profile from a partial payload.
func (uc *OwnerUseCase) Save(ctx context.Context, user *domain.User, req *OwnerProfileRequest) (*OwnerProfileView, error) {
	uc.syncContact(ctx, user, req)

	now := time.Now()
	existing, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		updated := reconcileUpdate(existing, req, now)
		if err := uc.ownerRepo.Update(ctx, updated); err != nil {
			return nil, err
		}
		return newOwnerProfileView(updated, user), nil
	case errors.Is(err, domain.ErrProfileNotFound):
		created := reconcileCreate(user.ID, req, now)
		if err := uc.ownerRepo.Create(ctx, created); err != nil {
			return nil, err
		}
		uc.log.WithField("user_id", user.ID).Info("owner profile created")
		return newOwnerProfileView(created, user), nil
	default:
		return nil, err
	}
}

func (uc *OwnerUseCase) syncContact(ctx context.Context, user *domain.User, req *OwnerProfileRequest) {
	if req.FirstName == nil && req.LastName == nil && req.Phone == nil {
		return
	}
	first, last := domain.SplitName(user.Name)
	if req.FirstName != nil {
		first = *req.FirstName
	}
	if req.LastName != nil {
		last = *req.LastName
	}
	phone := ""
	if req.Phone != nil {
		phone = *req.Phone
	}
	if err := uc.contacts.UpdateContact(ctx, user, first, last, phone); err != nil {
		uc.log.WithError(err).WithField("user_id", user.ID).Warn("contact update skipped")
	}
}
