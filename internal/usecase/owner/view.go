package owner

import (
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

// OwnerProfileView is the read-model returned to clients.
type OwnerProfileView struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     string  `json:"email"`
	PhotoURL  *string `json:"photo_url"`

	CountryCode         *string  `json:"country_code"`
	Postcode            string   `json:"postcode"`
	Street              *string  `json:"street"`
	HouseNumber         *string  `json:"house_number"`
	HouseNumberAddition *string  `json:"house_number_addition"`
	City                *string  `json:"city"`
	Lat                 *float64 `json:"lat"`
	Lon                 *float64 `json:"lon"`
	GeocodeConfidence   *float64 `json:"geocode_confidence"`
	NeedsReview         *bool    `json:"needs_review"`

	VisibleRadius int `json:"visible_radius"`

	AvailableSchedule   domain.Availability `json:"available_schedule"`
	AvailableDays       []string            `json:"available_days"`
	AvailableTimeBlocks []string            `json:"available_time_blocks"`
	StartDate           *string             `json:"start_date"`
	TrialPeriod         *int                `json:"trial_period"`
	Duration            *string             `json:"duration"`

	ContributionRequired *int `json:"contribution_required"`
	DepositRequired      *int `json:"deposit_required"`

	InstructionAvailable bool `json:"instruction_available"`
	InstructionRequired  bool `json:"instruction_required"`
	SupervisionRequired  bool `json:"supervision_required"`

	MinAgeRequirement *int `json:"min_age_requirement"`
	Under18Allowed    bool `json:"under_18_allowed"`
	IDRequired        bool `json:"id_required"`
	ContractRequired  bool `json:"contract_required"`

	InsuranceRequired     bool    `json:"insurance_required"`
	InsuranceRequirements *string `json:"insurance_requirements"`

	HelmetRequired bool    `json:"helmet_required"`
	BootsRequired  bool    `json:"boots_required"`
	StableRules    *string `json:"stable_rules"`

	DateOfBirth   *string `json:"date_of_birth"`
	ParentConsent *bool   `json:"parent_consent"`
	ParentName    *string `json:"parent_name"`
	ParentEmail   *string `json:"parent_email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newOwnerProfileView(p *domain.OwnerProfile, u *domain.User) *OwnerProfileView {
	first, last := domain.SplitName(u.Name)
	schedule := p.AvailableDays
	if schedule == nil {
		schedule = domain.Availability{}
	}
	return &OwnerProfileView{
		ID:     p.ID,
		UserID: p.UserID,

		FirstName: first,
		LastName:  last,
		Phone:     u.Phone,
		Email:     u.Email,
		PhotoURL:  p.PhotoURL,

		CountryCode:         p.CountryCode,
		Postcode:            p.Postcode,
		Street:              p.Street,
		HouseNumber:         p.HouseNumber,
		HouseNumberAddition: p.HouseNumberAddition,
		City:                p.City,
		Lat:                 p.Lat,
		Lon:                 p.Lon,
		GeocodeConfidence:   p.GeocodeConfidence,
		NeedsReview:         p.NeedsReview,

		VisibleRadius: p.VisibleRadius,

		AvailableSchedule:   schedule,
		AvailableDays:       schedule.Days(),
		AvailableTimeBlocks: schedule.Blocks(),
		StartDate:           formatDate(p.StartDate),
		TrialPeriod:         p.TrialPeriod,
		Duration:            p.Duration,

		ContributionRequired: p.ContributionRequired,
		DepositRequired:      p.DepositRequired,

		InstructionAvailable: p.InstructionAvailable,
		InstructionRequired:  p.InstructionRequired,
		SupervisionRequired:  p.SupervisionRequired,

		MinAgeRequirement: p.MinAgeRequirement,
		Under18Allowed:    p.Under18Allowed,
		IDRequired:        p.IDRequired,
		ContractRequired:  p.ContractRequired,

		InsuranceRequired:     p.InsuranceRequired,
		InsuranceRequirements: p.InsuranceRequirements,

		HelmetRequired: p.HelmetRequired,
		BootsRequired:  p.BootsRequired,
		StableRules:    p.StableRules,

		DateOfBirth:   formatDate(p.DateOfBirth),
		ParentConsent: p.ParentConsent,
		ParentName:    p.ParentName,
		ParentEmail:   p.ParentEmail,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
