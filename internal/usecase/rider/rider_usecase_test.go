package rider

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
)

type stubRiderRepo struct {
	profile *domain.RiderProfile
	created *domain.RiderProfile
	updated *domain.RiderProfile
}

func (s *stubRiderRepo) Create(ctx context.Context, p *domain.RiderProfile) error {
	p.ID = 42
	s.created = p
	return nil
}

func (s *stubRiderRepo) GetByUserID(ctx context.Context, userID int) (*domain.RiderProfile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubRiderRepo) Update(ctx context.Context, p *domain.RiderProfile) error {
	s.updated = p
	return nil
}

func (s *stubRiderRepo) Delete(ctx context.Context, userID int) error { return nil }

type stubContacts struct {
	calls int
	first string
	last  string
	phone string
}

func (s *stubContacts) UpdateContact(ctx context.Context, user *domain.User, firstName, lastName, phone string) error {
	s.calls++
	s.first = firstName
	s.last = lastName
	s.phone = phone
	return nil
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testUser() *domain.User {
	return &domain.User{ID: 7, KindeID: "kp_7", Name: "Anna de Vries", Email: "anna@example.com"}
}

func TestSaveCreatesWhenMissing(t *testing.T) {
	repo := &stubRiderRepo{}
	contacts := &stubContacts{}
	uc := NewRiderUseCase(repo, contacts, silentLogger())

	view, err := uc.Save(context.Background(), testUser(), &RiderProfileRequest{
		Postcode: strPtr("1234AB"),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected Create to be called")
	}
	if repo.updated != nil {
		t.Fatal("Update should not be called on first save")
	}
	if view.Postcode != "1234AB" {
		t.Errorf("view postcode = %q", view.Postcode)
	}
	if view.MaxTravelDistanceKm != 25 {
		t.Errorf("view travel distance = %d, want default 25", view.MaxTravelDistanceKm)
	}
	if contacts.calls != 0 {
		t.Error("no contact fields in payload, contact sync should not run")
	}
}

func TestSaveUpdatesWhenPresent(t *testing.T) {
	existing := reconcileCreate(7, &RiderProfileRequest{Postcode: strPtr("1234AB")}, testNow)
	repo := &stubRiderRepo{profile: existing}
	uc := NewRiderUseCase(repo, &stubContacts{}, silentLogger())

	view, err := uc.Save(context.Background(), testUser(), &RiderProfileRequest{
		City: strPtr("Utrecht"),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("expected Update to be called")
	}
	if repo.created != nil {
		t.Fatal("Create should not be called when a profile exists")
	}
	if view.Postcode != "1234AB" {
		t.Errorf("view postcode = %q, want carried over", view.Postcode)
	}
	if view.City == nil || *view.City != "Utrecht" {
		t.Errorf("view city = %v", view.City)
	}
}

func TestSaveForwardsContactFields(t *testing.T) {
	repo := &stubRiderRepo{}
	contacts := &stubContacts{}
	uc := NewRiderUseCase(repo, contacts, silentLogger())

	_, err := uc.Save(context.Background(), testUser(), &RiderProfileRequest{
		FirstName: strPtr("Sophie"),
		Phone:     strPtr("+31612345678"),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if contacts.calls != 1 {
		t.Fatalf("contact sync calls = %d, want 1", contacts.calls)
	}
	if contacts.first != "Sophie" {
		t.Errorf("first = %q", contacts.first)
	}
	if contacts.last != "de Vries" {
		t.Errorf("last = %q, want existing last name kept", contacts.last)
	}
	if contacts.phone != "+31612345678" {
		t.Errorf("phone = %q", contacts.phone)
	}
}

func TestGetSplitsNameInView(t *testing.T) {
	existing := reconcileCreate(7, &RiderProfileRequest{}, testNow)
	repo := &stubRiderRepo{profile: existing}
	uc := NewRiderUseCase(repo, &stubContacts{}, silentLogger())

	view, err := uc.Get(context.Background(), testUser())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if view.FirstName != "Anna" || view.LastName != "de Vries" {
		t.Errorf("name split = %q %q", view.FirstName, view.LastName)
	}
	if view.HealthRestrictions == nil || view.NoGos == nil {
		t.Error("serialized lists must decode to non-nil slices")
	}
	if view.AvailableDays == nil || view.AvailableTimeBlocks == nil {
		t.Error("flattened availability must be non-nil")
	}
}
