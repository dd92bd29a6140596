package rider

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

type RiderUseCase struct {
	riderRepo repository.RiderRepository
	contacts  ContactUpdater
	log       *logrus.Logger
}

func NewRiderUseCase(riderRepo repository.RiderRepository, contacts ContactUpdater, log *logrus.Logger) *RiderUseCase {
	return &RiderUseCase{
		riderRepo: riderRepo,
		contacts:  contacts,
		log:       log,
	}
}

// Get returns the caller's rider profile as the client read-model.
func (uc *RiderUseCase) Get(ctx context.Context, user *domain.User) (*RiderProfileView, error) {
	profile, err := uc.riderRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return newRiderProfileView(profile, user), nil
}

// Save accepts a partial payload and either creates the caller's rider
// profile or merges the payload into the existing one. The endpoint is a
// single upsert so clients never need to track whether a profile exists.
func (uc *RiderUseCase) Save(ctx context.Context, user *domain.User, req *RiderProfileRequest) (*RiderProfileView, error) {
	uc.syncContact(ctx, user, req)
	uc.warnOnBadDate(user.ID, "date_of_birth", req.DateOfBirth)
	uc.warnOnBadDate(user.ID, "start_date", req.StartDate)

	now := time.Now()
	existing, err := uc.riderRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		updated := reconcileUpdate(existing, req, now)
		if err := uc.riderRepo.Update(ctx, updated); err != nil {
			return nil, err
		}
		return newRiderProfileView(updated, user), nil
	case errors.Is(err, domain.ErrProfileNotFound):
		created := reconcileCreate(user.ID, req, now)
		if err := uc.riderRepo.Create(ctx, created); err != nil {
			return nil, err
		}
		uc.log.WithFields(logrus.Fields{
			"user_id":       user.ID,
			"activity_mode": created.ActivityMode,
		}).Info("rider profile created")
		return newRiderProfileView(created, user), nil
	default:
		return nil, err
	}
}

// syncContact forwards any contact fields riding along in the profile
// payload to the user record. Failures are logged and swallowed; a stale
// phone number must not block a profile save.
func (uc *RiderUseCase) syncContact(ctx context.Context, user *domain.User, req *RiderProfileRequest) {
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

// warnOnBadDate records an unparseable date field. The reconciler silently
// skips such fields; the log line is the only trace the client sent one.
func (uc *RiderUseCase) warnOnBadDate(userID int, field string, value *string) {
	if value == nil || *value == "" {
		return
	}
	if _, err := domain.ParseBirthDate(*value); err != nil {
		uc.log.WithFields(logrus.Fields{
			"user_id": userID,
			"field":   field,
			"value":   *value,
		}).Warn("unparseable date ignored")
	}
}
