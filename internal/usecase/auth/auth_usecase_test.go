package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/infrastructure/kinde"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	updated *domain.User

	onboardingCompleted bool
	onboardingType      domain.ProfileType
	onboardingCalls     int
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error {
	u.ID = 1
	s.users[u.KindeID] = u
	return nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) GetByKindeID(ctx context.Context, kindeID string) (*domain.User, error) {
	u, ok := s.users[kindeID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) Update(ctx context.Context, u *domain.User) error {
	s.updated = u
	return nil
}

func (s *stubUserRepo) SetOnboarding(ctx context.Context, userID int, completed bool, profileType domain.ProfileType) error {
	s.onboardingCalls++
	s.onboardingCompleted = completed
	s.onboardingType = profileType
	return nil
}

type stubRiderRepo struct{ exists bool }

func (s *stubRiderRepo) Create(ctx context.Context, p *domain.RiderProfile) error { return nil }
func (s *stubRiderRepo) GetByUserID(ctx context.Context, userID int) (*domain.RiderProfile, error) {
	if !s.exists {
		return nil, domain.ErrProfileNotFound
	}
	return &domain.RiderProfile{UserID: userID}, nil
}
func (s *stubRiderRepo) Update(ctx context.Context, p *domain.RiderProfile) error { return nil }
func (s *stubRiderRepo) Delete(ctx context.Context, userID int) error             { return nil }

type stubOwnerRepo struct{ exists bool }

func (s *stubOwnerRepo) Create(ctx context.Context, p *domain.OwnerProfile) error { return nil }
func (s *stubOwnerRepo) GetByUserID(ctx context.Context, userID int) (*domain.OwnerProfile, error) {
	if !s.exists {
		return nil, domain.ErrProfileNotFound
	}
	return &domain.OwnerProfile{UserID: userID}, nil
}
func (s *stubOwnerRepo) Update(ctx context.Context, p *domain.OwnerProfile) error { return nil }
func (s *stubOwnerRepo) Delete(ctx context.Context, userID int) error             { return nil }

func newTestUseCase(userRepo *stubUserRepo, rider *stubRiderRepo, owner *stubOwnerRepo) *AuthUseCase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAuthUseCase(userRepo, rider, owner, nil, nil, nil, log)
}

func TestReconcileClaimsNameAndPhoneAuthoritative(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{}, &stubOwnerRepo{})
	oldPhone := "+31600000000"
	user := &domain.User{Name: "Old Name", Phone: &oldPhone, Email: "anna@example.com"}
	claims := &kinde.Claims{ID: "kp_1", GivenName: "Anna", FamilyName: "de Vries", Phone: "+31612345678"}

	if !uc.reconcileClaims(user, claims) {
		t.Fatal("expected change")
	}
	if user.Name != "Anna de Vries" {
		t.Errorf("Name = %q", user.Name)
	}
	if user.Phone == nil || *user.Phone != "+31612345678" {
		t.Errorf("Phone = %v", user.Phone)
	}
}

func TestReconcileClaimsKeepsRealEmail(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{}, &stubOwnerRepo{})
	user := &domain.User{Name: "Anna de Vries", Email: "anna@example.com"}
	claims := &kinde.Claims{ID: "kp_1", Name: "Anna de Vries", Email: "other@example.com"}

	if uc.reconcileClaims(user, claims) {
		t.Error("real stored email must not be replaced")
	}
	if user.Email != "anna@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
}

func TestReconcileClaimsReplacesPlaceholderEmail(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{}, &stubOwnerRepo{})
	user := &domain.User{Name: "Anna de Vries", Email: domain.PlaceholderEmail("kp_1")}
	claims := &kinde.Claims{ID: "kp_1", Name: "Anna de Vries", Email: "anna@example.com"}

	if !uc.reconcileClaims(user, claims) {
		t.Fatal("expected change")
	}
	if user.Email != "anna@example.com" {
		t.Errorf("Email = %q", user.Email)
	}
}

func TestReconcileClaimsNoChangeNoUpdate(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{}, &stubOwnerRepo{})
	phone := "+31612345678"
	user := &domain.User{Name: "Anna de Vries", Phone: &phone, Email: "anna@example.com"}
	claims := &kinde.Claims{ID: "kp_1", GivenName: "Anna", FamilyName: "de Vries", Phone: phone, Email: "anna@example.com"}

	if uc.reconcileClaims(user, claims) {
		t.Error("identical claims should report no change")
	}
}

func TestExpiredPreScreen(t *testing.T) {
	mint := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": exp.Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return signed
	}

	if !expired(mint(time.Now().Add(-time.Hour))) {
		t.Error("past-exp token should be pre-screened out")
	}
	if expired(mint(time.Now().Add(time.Hour))) {
		t.Error("live token should pass")
	}
	if expired("opaque-session-token") {
		t.Error("opaque tokens must pass through to the provider")
	}
}

func TestAuthenticateRejectsEmptyToken(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{}, &stubOwnerRepo{})
	if _, err := uc.Authenticate(context.Background(), ""); err != domain.ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestGetMeReportsProfilePresence(t *testing.T) {
	uc := newTestUseCase(&stubUserRepo{users: map[string]*domain.User{}}, &stubRiderRepo{exists: true}, &stubOwnerRepo{})
	user := &domain.User{ID: 7, KindeID: "kp_7", Name: "Anna de Vries"}

	me, err := uc.GetMe(context.Background(), user)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if !me.HasRiderProfile {
		t.Error("HasRiderProfile should be true")
	}
	if me.HasOwnerProfile {
		t.Error("HasOwnerProfile should be false")
	}
}

func TestCompleteOnboardingValidatesType(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	uc := newTestUseCase(repo, &stubRiderRepo{}, &stubOwnerRepo{})
	user := &domain.User{ID: 7}

	if err := uc.CompleteOnboarding(context.Background(), user, "stablehand"); err != domain.ErrInvalidInput {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if err := uc.CompleteOnboarding(context.Background(), user, "rider"); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	if !repo.onboardingCompleted || repo.onboardingType != domain.ProfileTypeRider {
		t.Errorf("onboarding recorded as (%v, %s)", repo.onboardingCompleted, repo.onboardingType)
	}
}

func TestUpdateContactPersistsOnlyOnChange(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	uc := newTestUseCase(repo, &stubRiderRepo{}, &stubOwnerRepo{})
	user := &domain.User{ID: 7, KindeID: "kp_7", Name: "Anna de Vries"}

	if err := uc.UpdateContact(context.Background(), user, "Anna", "de Vries", ""); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if repo.updated != nil {
		t.Error("unchanged contact must not hit the repository")
	}

	if err := uc.UpdateContact(context.Background(), user, "Sophie", "de Vries", ""); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("changed name must be persisted")
	}
	if user.Name != "Sophie de Vries" {
		t.Errorf("Name = %q", user.Name)
	}
}
