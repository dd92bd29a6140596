package horse

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
)

type HorseUseCase struct {
	horseRepo repository.HorseRepository
	ownerRepo repository.OwnerRepository
	log       *logrus.Logger
}

func NewHorseUseCase(horseRepo repository.HorseRepository, ownerRepo repository.OwnerRepository, log *logrus.Logger) *HorseUseCase {
	return &HorseUseCase{
		horseRepo: horseRepo,
		ownerRepo: ownerRepo,
		log:       log,
	}
}

// List returns the caller's horse ads. A caller without an owner profile
// simply has no ads yet.
func (uc *HorseUseCase) List(ctx context.Context, user *domain.User) ([]*HorseView, error) {
	owner, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return []*HorseView{}, nil
	}
	if err != nil {
		return nil, err
	}
	horses, err := uc.horseRepo.ListByOwnerProfileID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	views := make([]*HorseView, 0, len(horses))
	for _, h := range horses {
		views = append(views, newHorseView(h))
	}
	return views, nil
}

// Save creates a horse ad for the caller, or updates one of the caller's
// existing ads when the payload carries its id. The owner profile must
// exist first; ads hang off it, not off the user.
func (uc *HorseUseCase) Save(ctx context.Context, user *domain.User, req *HorseProfileRequest) (*HorseView, error) {
	owner, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if req.ID != nil {
		return uc.update(ctx, owner.ID, *req.ID, req)
	}

	created := reconcileCreate(owner.ID, req)
	if err := uc.horseRepo.Create(ctx, created); err != nil {
		return nil, err
	}
	uc.log.WithFields(logrus.Fields{
		"owner_profile_id": owner.ID,
		"horse_id":         created.ID,
	}).Info("horse ad created")
	return newHorseView(created), nil
}

// Update merges a partial payload into the identified ad after checking
// the caller owns it.
func (uc *HorseUseCase) Update(ctx context.Context, user *domain.User, horseID int, req *HorseProfileRequest) (*HorseView, error) {
	owner, err := uc.ownerRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return uc.update(ctx, owner.ID, horseID, req)
}

func (uc *HorseUseCase) update(ctx context.Context, ownerProfileID, horseID int, req *HorseProfileRequest) (*HorseView, error) {
	existing, err := uc.horseRepo.GetByID(ctx, horseID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerProfileID != ownerProfileID {
		return nil, domain.ErrNotProfileOwner
	}
	updated := reconcileUpdate(existing, req)
	if err := uc.horseRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return newHorseView(updated), nil
}

// HorseView is the client read-model for a horse ad. It decodes the
// serialized text lists and flattens the availability mapping alongside
// the explicit schedule.
type HorseView struct {
	*domain.HorseProfile

	HealthRestrictionsList []string            `json:"health_restrictions_list"`
	NoGosList              []string            `json:"no_gos_list"`
	AvailableSchedule      domain.Availability `json:"available_schedule"`
	AvailableDaysFlat      []string            `json:"available_days_flat"`
	AvailableTimeBlocks    []string            `json:"available_time_blocks"`
	VideoIntroURL          *string             `json:"video_intro_url"`
}

func newHorseView(h *domain.HorseProfile) *HorseView {
	schedule := h.AvailableDays
	if schedule == nil {
		schedule = domain.Availability{}
	}
	return &HorseView{
		HorseProfile:           h,
		HealthRestrictionsList: domain.DecodeTextList(h.HealthRestrictions),
		NoGosList:              domain.DecodeTextList(h.NoGos),
		AvailableSchedule:      schedule,
		AvailableDaysFlat:      schedule.Days(),
		AvailableTimeBlocks:    schedule.Blocks(),
		VideoIntroURL:          h.Video,
	}
}
