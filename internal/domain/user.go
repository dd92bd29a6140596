package domain

import (
	"fmt"
	"strings"
	"time"
)

type ProfileType string

const (
	ProfileTypeRider ProfileType = "rider"
	ProfileTypeOwner ProfileType = "owner"
	ProfileTypeNone  ProfileType = ""
)

// User is the local record for an identity-provider account. The provider
// is authoritative for name, phone and (initially) email; onboarding state
// and the chosen profile type live only here.
type User struct {
	ID                  int         `json:"id" db:"id"`
	KindeID             string      `json:"kinde_id" db:"kinde_id"`
	Email               string      `json:"email" db:"email"`
	Name                string      `json:"name" db:"name"`
	Phone               *string     `json:"phone" db:"phone"`
	IsActive            bool        `json:"is_active" db:"is_active"`
	OnboardingCompleted bool        `json:"onboarding_completed" db:"onboarding_completed"`
	ProfileTypeChosen   ProfileType `json:"profile_type_chosen" db:"profile_type_chosen"`
	CreatedAt           time.Time   `json:"created_at" db:"created_at"`
}

// FirstName returns everything before the first space of the display name.
func (u *User) FirstName() string {
	first, _ := SplitName(u.Name)
	return first
}

// LastName returns everything after the first space of the display name.
func (u *User) LastName() string {
	_, last := SplitName(u.Name)
	return last
}

// SplitName splits a display name on the first whitespace.
func SplitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

// JoinName is the inverse of SplitName for payloads that carry the name
// in two fields.
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

const placeholderEmailDomain = "noemail.kinde"

// PlaceholderEmail synthesizes a unique stand-in address for providers
// that return no email claim.
func PlaceholderEmail(kindeID string) string {
	return fmt.Sprintf("%s@%s", kindeID, placeholderEmailDomain)
}

// IsPlaceholderEmail reports whether the stored email was synthesized by
// us and may therefore be replaced by a real provider claim.
func IsPlaceholderEmail(email string) bool {
	return strings.HasSuffix(email, "@"+placeholderEmailDomain)
}

// ValidProfileType reports whether s is an accepted profile type choice.
func ValidProfileType(s string) bool {
	return s == string(ProfileTypeRider) || s == string(ProfileTypeOwner)
}
