package owner

import (
	"encoding/json"

	"github.com/horsesharing/backend/internal/domain"
)

// OwnerProfileRequest is the partial owner payload. Pointer fields keep
// "absent" distinguishable from the zero value so updates only touch what
// the client sent.
type OwnerProfileRequest struct {
	// Contact; these update the user record, not the profile row
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`

	PhotoURL *string `json:"photo_url"`

	// Address
	CountryCode         *string  `json:"country_code"`
	Postcode            *string  `json:"postcode" binding:"omitempty,nl_postcode"`
	Street              *string  `json:"street"`
	HouseNumber         *string  `json:"house_number"`
	HouseNumberAddition *string  `json:"house_number_addition"`
	City                *string  `json:"city"`
	Lat                 *float64 `json:"lat"`
	Lon                 *float64 `json:"lon"`
	GeocodeConfidence   *float64 `json:"geocode_confidence"`
	NeedsReview         *bool    `json:"needs_review"`

	VisibleRadius *int `json:"visible_radius" binding:"omitempty,min=1,max=500"`

	// Availability
	AvailableSchedule   json.RawMessage `json:"available_schedule"`
	AvailableDays       *[]string       `json:"available_days"`
	AvailableTimeBlocks *[]string       `json:"available_time_blocks"`
	StartDate           *string         `json:"start_date"`
	TrialPeriod         *int            `json:"trial_period"`
	Duration            *string         `json:"duration"`

	// Financial
	ContributionRequired *int `json:"contribution_required"`
	DepositRequired      *int `json:"deposit_required"`

	// Supervision & instruction
	InstructionAvailable *bool `json:"instruction_available"`
	InstructionRequired  *bool `json:"instruction_required"`
	SupervisionRequired  *bool `json:"supervision_required"`

	// Safety & requirements
	MinAgeRequirement *int  `json:"min_age_requirement"`
	Under18Allowed    *bool `json:"under_18_allowed"`
	IDRequired        *bool `json:"id_required"`
	ContractRequired  *bool `json:"contract_required"`

	// Insurance
	InsuranceRequired     *bool   `json:"insurance_required"`
	InsuranceRequirements *string `json:"insurance_requirements"`

	// Stable rules
	HelmetRequired *bool   `json:"helmet_required"`
	BootsRequired  *bool   `json:"boots_required"`
	StableRules    *string `json:"stable_rules"`

	// Age & guardian consent
	DateOfBirth   *string `json:"date_of_birth"`
	ParentConsent *bool   `json:"parent_consent"`
	ParentName    *string `json:"parent_name"`
	ParentEmail   *string `json:"parent_email" binding:"omitempty,email"`
}

// decodeSchedule parses an explicit per-day schedule object; malformed
// input counts as absent so the flat arrays still apply.
func decodeSchedule(raw json.RawMessage) domain.Availability {
	if len(raw) == 0 {
		return nil
	}
	var schedule domain.Availability
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil
	}
	return schedule
}
