package horse

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
)

type stubHorseRepo struct {
	horses  map[int]*domain.HorseProfile
	created *domain.HorseProfile
	updated *domain.HorseProfile
}

func (s *stubHorseRepo) Create(ctx context.Context, h *domain.HorseProfile) error {
	h.ID = 100
	s.created = h
	return nil
}

func (s *stubHorseRepo) GetByID(ctx context.Context, id int) (*domain.HorseProfile, error) {
	h, ok := s.horses[id]
	if !ok {
		return nil, domain.ErrHorseNotFound
	}
	return h, nil
}

func (s *stubHorseRepo) ListByOwnerProfileID(ctx context.Context, ownerProfileID int) ([]*domain.HorseProfile, error) {
	var out []*domain.HorseProfile
	for _, h := range s.horses {
		if h.OwnerProfileID == ownerProfileID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *stubHorseRepo) Update(ctx context.Context, h *domain.HorseProfile) error {
	s.updated = h
	return nil
}

func (s *stubHorseRepo) Delete(ctx context.Context, id int) error { return nil }

type stubOwnerRepo struct {
	profile *domain.OwnerProfile
}

func (s *stubOwnerRepo) Create(ctx context.Context, p *domain.OwnerProfile) error { return nil }

func (s *stubOwnerRepo) GetByUserID(ctx context.Context, userID int) (*domain.OwnerProfile, error) {
	if s.profile == nil || s.profile.UserID != userID {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubOwnerRepo) Update(ctx context.Context, p *domain.OwnerProfile) error { return nil }
func (s *stubOwnerRepo) Delete(ctx context.Context, userID int) error             { return nil }

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testUser() *domain.User {
	return &domain.User{ID: 7, KindeID: "kp_7", Name: "Joris Bakker"}
}

func TestSaveCreatesAd(t *testing.T) {
	horseRepo := &stubHorseRepo{horses: map[int]*domain.HorseProfile{}}
	ownerRepo := &stubOwnerRepo{profile: &domain.OwnerProfile{ID: 5, UserID: 7}}
	uc := NewHorseUseCase(horseRepo, ownerRepo, silentLogger())

	view, err := uc.Save(context.Background(), testUser(), &HorseProfileRequest{
		Name: strPtr("Bella"),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if horseRepo.created == nil {
		t.Fatal("expected Create to be called")
	}
	if view.OwnerProfileID != 5 {
		t.Errorf("OwnerProfileID = %d, want 5", view.OwnerProfileID)
	}
}

func TestSaveWithIDUpdatesExistingAd(t *testing.T) {
	existing := reconcileCreate(5, &HorseProfileRequest{Name: strPtr("Bella")})
	existing.ID = 9
	horseRepo := &stubHorseRepo{horses: map[int]*domain.HorseProfile{9: existing}}
	ownerRepo := &stubOwnerRepo{profile: &domain.OwnerProfile{ID: 5, UserID: 7}}
	uc := NewHorseUseCase(horseRepo, ownerRepo, silentLogger())

	view, err := uc.Save(context.Background(), testUser(), &HorseProfileRequest{
		ID:    intPtr(9),
		Breed: strPtr("KWPN"),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if horseRepo.created != nil {
		t.Fatal("Create should not run when the payload carries an id")
	}
	if horseRepo.updated == nil {
		t.Fatal("expected Update to be called")
	}
	if view.Name != "Bella" {
		t.Errorf("Name = %q, want carried over", view.Name)
	}
	if view.Breed == nil || *view.Breed != "KWPN" {
		t.Errorf("Breed = %v", view.Breed)
	}
}

func TestUpdateRejectsForeignAd(t *testing.T) {
	foreign := reconcileCreate(99, &HorseProfileRequest{Name: strPtr("Storm")})
	foreign.ID = 4
	horseRepo := &stubHorseRepo{horses: map[int]*domain.HorseProfile{4: foreign}}
	ownerRepo := &stubOwnerRepo{profile: &domain.OwnerProfile{ID: 5, UserID: 7}}
	uc := NewHorseUseCase(horseRepo, ownerRepo, silentLogger())

	_, err := uc.Update(context.Background(), testUser(), 4, &HorseProfileRequest{
		Breed: strPtr("KWPN"),
	})
	if !errors.Is(err, domain.ErrNotProfileOwner) {
		t.Fatalf("err = %v, want ErrNotProfileOwner", err)
	}
	if horseRepo.updated != nil {
		t.Fatal("foreign ad must not be updated")
	}
}

func TestSaveRequiresOwnerProfile(t *testing.T) {
	horseRepo := &stubHorseRepo{horses: map[int]*domain.HorseProfile{}}
	uc := NewHorseUseCase(horseRepo, &stubOwnerRepo{}, silentLogger())

	_, err := uc.Save(context.Background(), testUser(), &HorseProfileRequest{Name: strPtr("Bella")})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestListWithoutOwnerProfileIsEmpty(t *testing.T) {
	uc := NewHorseUseCase(&stubHorseRepo{}, &stubOwnerRepo{}, silentLogger())

	views, err := uc.List(context.Background(), testUser())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("views = %v, want empty", views)
	}
}
