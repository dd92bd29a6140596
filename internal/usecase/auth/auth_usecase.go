package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/infrastructure/kinde"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// identityCacheTTL bounds how long a verified token is trusted without
// re-consulting the provider.
const identityCacheTTL = 60 * time.Second

type AuthUseCase struct {
	userRepo      repository.UserRepository
	riderRepo     repository.RiderRepository
	ownerRepo     repository.OwnerRepository
	kindeClient   *kinde.Client
	management    *kinde.ManagementClient
	identityCache repository.IdentityCache
	log           *logrus.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	riderRepo repository.RiderRepository,
	ownerRepo repository.OwnerRepository,
	kindeClient *kinde.Client,
	management *kinde.ManagementClient,
	identityCache repository.IdentityCache,
	log *logrus.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		riderRepo:     riderRepo,
		ownerRepo:     ownerRepo,
		kindeClient:   kindeClient,
		management:    management,
		identityCache: identityCache,
		log:           log,
	}
}

// Authenticate resolves a bearer token to a local user, creating the user
// on first login and folding fresh provider claims into the stored record.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidToken
	}
	if expired(token) {
		return nil, domain.ErrInvalidToken
	}

	claims, err := uc.resolveClaims(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByKindeID(ctx, claims.ID)
	if err == domain.ErrUserNotFound {
		return uc.createUserFromClaims(ctx, claims)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if uc.reconcileClaims(user, claims) {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to update user from claims: %w", err)
		}
	}
	return user, nil
}

// expired pre-screens JWT bearer tokens locally so a token that is
// already past its exp claim never costs a provider round-trip. Opaque
// (non-JWT) tokens pass through to the provider.
func expired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (uc *AuthUseCase) resolveClaims(ctx context.Context, token string) (*kinde.Claims, error) {
	if uc.identityCache != nil {
		if cached, err := uc.identityCache.Get(ctx, token); err != nil {
			uc.log.WithError(err).Warn("identity cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	claims, err := uc.kindeClient.UserProfile(ctx, token)
	if err != nil {
		uc.log.WithError(err).Debug("token verification failed")
		return nil, domain.ErrInvalidToken
	}

	if uc.identityCache != nil {
		if err := uc.identityCache.Set(ctx, token, claims, identityCacheTTL); err != nil {
			uc.log.WithError(err).Warn("identity cache write failed")
		}
	}
	return claims, nil
}

func (uc *AuthUseCase) createUserFromClaims(ctx context.Context, claims *kinde.Claims) (*domain.User, error) {
	email := claims.Email
	if email == "" {
		email = domain.PlaceholderEmail(claims.ID)
	}
	user := &domain.User{
		KindeID:  claims.ID,
		Email:    email,
		Name:     claims.FullName(),
		IsActive: true,
	}
	if claims.Phone != "" {
		phone := claims.Phone
		user.Phone = &phone
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	uc.log.WithField("user_id", user.ID).Info("created user from provider claims")
	return user, nil
}

// reconcileClaims folds provider claims into the stored user. The provider
// is authoritative for name and phone; a stored real email is never
// replaced, only an empty or placeholder one. Returns true when the record
// changed and needs persisting.
func (uc *AuthUseCase) reconcileClaims(user *domain.User, claims *kinde.Claims) bool {
	changed := false

	if name := claims.FullName(); name != "" && name != user.Name {
		user.Name = name
		changed = true
	}
	if claims.Phone != "" && (user.Phone == nil || *user.Phone != claims.Phone) {
		phone := claims.Phone
		user.Phone = &phone
		changed = true
	}
	if claims.Email != "" && claims.Email != user.Email {
		if user.Email == "" || domain.IsPlaceholderEmail(user.Email) {
			user.Email = claims.Email
			changed = true
		}
	}
	return changed
}

// Me describes the current user the way the client dashboard expects it.
type Me struct {
	ID                  int                `json:"id"`
	KindeID             string             `json:"kinde_id"`
	Email               string             `json:"email"`
	Name                string             `json:"name"`
	Phone               *string            `json:"phone"`
	OnboardingCompleted bool               `json:"onboarding_completed"`
	ProfileTypeChosen   domain.ProfileType `json:"profile_type_chosen"`
	HasRiderProfile     bool               `json:"has_rider_profile"`
	HasOwnerProfile     bool               `json:"has_owner_profile"`
	CreatedAt           time.Time          `json:"created_at"`
}

// GetMe returns the current-user view, including which profiles exist.
func (uc *AuthUseCase) GetMe(ctx context.Context, user *domain.User) (*Me, error) {
	hasRider := false
	if _, err := uc.riderRepo.GetByUserID(ctx, user.ID); err == nil {
		hasRider = true
	} else if err != domain.ErrProfileNotFound {
		return nil, err
	}

	hasOwner := false
	if _, err := uc.ownerRepo.GetByUserID(ctx, user.ID); err == nil {
		hasOwner = true
	} else if err != domain.ErrProfileNotFound {
		return nil, err
	}

	return &Me{
		ID:                  user.ID,
		KindeID:             user.KindeID,
		Email:               user.Email,
		Name:                user.Name,
		Phone:               user.Phone,
		OnboardingCompleted: user.OnboardingCompleted,
		ProfileTypeChosen:   user.ProfileTypeChosen,
		HasRiderProfile:     hasRider,
		HasOwnerProfile:     hasOwner,
		CreatedAt:           user.CreatedAt,
	}, nil
}

// SetProfileType records the user's rider/owner choice.
func (uc *AuthUseCase) SetProfileType(ctx context.Context, user *domain.User, profileType string) error {
	if !domain.ValidProfileType(profileType) {
		return domain.ErrInvalidInput
	}
	return uc.userRepo.SetOnboarding(ctx, user.ID, user.OnboardingCompleted, domain.ProfileType(profileType))
}

// CompleteOnboarding marks onboarding done with the chosen profile type.
func (uc *AuthUseCase) CompleteOnboarding(ctx context.Context, user *domain.User, profileType string) error {
	if !domain.ValidProfileType(profileType) {
		return domain.ErrInvalidInput
	}
	return uc.userRepo.SetOnboarding(ctx, user.ID, true, domain.ProfileType(profileType))
}

// ResetProfile clears the onboarding flag and chosen type so the user can
// restart the flow.
func (uc *AuthUseCase) ResetProfile(ctx context.Context, user *domain.User) error {
	return uc.userRepo.SetOnboarding(ctx, user.ID, false, domain.ProfileTypeNone)
}

// UpdateContact persists locally-changed name/phone and pushes them to the
// provider in the background. The push is fire-and-forget: failures are
// logged and swallowed, never surfaced to the request.
func (uc *AuthUseCase) UpdateContact(ctx context.Context, user *domain.User, firstName, lastName, phone string) error {
	changed := false
	if firstName != "" || lastName != "" {
		name := domain.JoinName(firstName, lastName)
		if name != "" && name != user.Name {
			user.Name = name
			changed = true
		}
	}
	if phone != "" && (user.Phone == nil || *user.Phone != phone) {
		p := phone
		user.Phone = &p
		changed = true
	}
	if !changed {
		return nil
	}
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to update user contact info: %w", err)
	}
	uc.SyncUserToProvider(user)
	return nil
}

// SyncUserToProvider pushes the local name/phone to the identity provider
// without blocking the caller.
func (uc *AuthUseCase) SyncUserToProvider(user *domain.User) {
	if uc.management == nil {
		return
	}
	first, last := domain.SplitName(user.Name)
	update := kinde.UserUpdate{
		GivenName:  first,
		FamilyName: last,
	}
	if user.Phone != nil {
		update.Phone = *user.Phone
	}
	kindeID := user.KindeID

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.management.UpdateUser(ctx, kindeID, update); err != nil {
			uc.log.WithError(err).WithField("kinde_id", kindeID).Warn("identity sync skipped")
		}
	}()
}
