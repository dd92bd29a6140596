package domain

import "time"

// DefaultVisibleRadiusKm is applied when an owner create payload omits it.
const DefaultVisibleRadiusKm = 10

// OwnerProfile is the persisted owner record, one per user.
type OwnerProfile struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	PhotoURL *string `json:"photo_url" db:"photo_url"`

	// Address; geocoding itself is an external concern, we only store what
	// the client resolved.
	CountryCode         *string  `json:"country_code" db:"country_code"`
	Postcode            string   `json:"postcode" db:"postcode"`
	Street              *string  `json:"street" db:"street"`
	HouseNumber         *string  `json:"house_number" db:"house_number"`
	HouseNumberAddition *string  `json:"house_number_addition" db:"house_number_addition"`
	City                *string  `json:"city" db:"city"`
	Lat                 *float64 `json:"lat" db:"lat"`
	Lon                 *float64 `json:"lon" db:"lon"`
	GeocodeConfidence   *float64 `json:"geocode_confidence" db:"geocode_confidence"`
	NeedsReview         *bool    `json:"needs_review" db:"needs_review"`

	VisibleRadius int `json:"visible_radius" db:"visible_radius"`

	// Availability
	AvailableDays Availability `json:"available_days" db:"available_days"`
	StartDate     *time.Time   `json:"start_date" db:"start_date"`
	TrialPeriod   *int         `json:"trial_period" db:"trial_period"`
	Duration      *string      `json:"duration" db:"duration"`

	// Financial
	ContributionRequired *int `json:"contribution_required" db:"contribution_required"`
	DepositRequired      *int `json:"deposit_required" db:"deposit_required"`

	// Supervision & instruction
	InstructionAvailable bool `json:"instruction_available" db:"instruction_available"`
	InstructionRequired  bool `json:"instruction_required" db:"instruction_required"`
	SupervisionRequired  bool `json:"supervision_required" db:"supervision_required"`

	// Safety & requirements
	MinAgeRequirement *int `json:"min_age_requirement" db:"min_age_requirement"`
	Under18Allowed    bool `json:"under_18_allowed" db:"under_18_allowed"`
	IDRequired        bool `json:"id_required" db:"id_required"`
	ContractRequired  bool `json:"contract_required" db:"contract_required"`

	// Insurance
	InsuranceRequired     bool    `json:"insurance_required" db:"insurance_required"`
	InsuranceRequirements *string `json:"insurance_requirements" db:"insurance_requirements"`

	// Stable rules
	HelmetRequired bool    `json:"helmet_required" db:"helmet_required"`
	BootsRequired  bool    `json:"boots_required" db:"boots_required"`
	StableRules    *string `json:"stable_rules" db:"stable_rules"`

	// Age & guardian consent
	DateOfBirth            *time.Time `json:"date_of_birth" db:"date_of_birth"`
	ParentConsent          *bool      `json:"parent_consent" db:"parent_consent"`
	ParentName             *string    `json:"parent_name" db:"parent_name"`
	ParentEmail            *string    `json:"parent_email" db:"parent_email"`
	ParentConsentTimestamp *time.Time `json:"parent_consent_timestamp" db:"parent_consent_timestamp"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
