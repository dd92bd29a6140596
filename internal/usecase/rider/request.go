package rider

import (
	"encoding/json"

	"github.com/horsesharing/backend/internal/domain"
)

// RiderProfileRequest is the partial rider payload. Every field is a
// pointer (or raw JSON for grouped objects) so "absent" and "zero value"
// stay distinguishable: on update, a nil field leaves the stored value
// untouched.
type RiderProfileRequest struct {
	// Contact; these update the user record, not the profile row
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`

	// Basic info
	DateOfBirth         *string   `json:"date_of_birth"`
	Postcode            *string   `json:"postcode" binding:"omitempty,nl_postcode"`
	HouseNumber         *string   `json:"house_number"`
	City                *string   `json:"city"`
	MaxTravelDistanceKm *int      `json:"max_travel_distance_km" binding:"omitempty,min=1,max=500"`
	TransportOptions    *[]string `json:"transport_options"`
	RiderBio            *string   `json:"rider_bio"`
	RiderHeightCM       *int      `json:"rider_height_cm"`
	RiderWeightKG       *int      `json:"rider_weight_kg"`
	ParentConsent       *bool     `json:"parent_consent"`
	ParentContact       *string   `json:"parent_contact"`

	// Availability; an explicit schedule object wins over the flat arrays
	AvailableSchedule   json.RawMessage `json:"available_schedule"`
	AvailableDays       *[]string       `json:"available_days"`
	AvailableTimeBlocks *[]string       `json:"available_time_blocks"`
	SessionDurationMin  *int            `json:"session_duration_min"`
	SessionDurationMax  *int            `json:"session_duration_max"`
	StartDate           *string         `json:"start_date"`
	ArrangementDuration *string         `json:"arrangement_duration"`
	MinDaysPerWeek      *int            `json:"min_days_per_week"`

	// Budget
	BudgetMinEuro *int `json:"budget_min_euro"`
	BudgetMaxEuro *int `json:"budget_max_euro"`

	// Experience
	ExperienceYears    *int            `json:"experience_years"`
	CertificationLevel *string         `json:"certification_level"`
	Certifications     *[]string       `json:"certifications"`
	ComfortLevels      json.RawMessage `json:"comfort_levels"`

	// Activities
	ActivityMode        *string   `json:"activity_mode"`
	ActivityPreferences *[]string `json:"activity_preferences"`
	MennenExperience    *string   `json:"mennen_experience"`

	// Goals
	RidingGoals           *[]string `json:"riding_goals"`
	DisciplinePreferences *[]string `json:"discipline_preferences"`
	PersonalityStyle      *[]string `json:"personality_style"`
	GeneralSkills         *[]string `json:"general_skills"`

	// Tasks
	WillingTasks  *[]string `json:"willing_tasks"`
	TaskFrequency *string   `json:"task_frequency"`

	// Preferences
	MaterialPreferences json.RawMessage `json:"material_preferences"`
	LeasePreferences    json.RawMessage `json:"lease_preferences"`
	DesiredHorse        json.RawMessage `json:"desired_horse"`
	HealthRestrictions  *[]string       `json:"health_restrictions"`
	InsuranceCoverage   *bool           `json:"insurance_coverage"`
	NoGos               *[]string       `json:"no_gos"`
	RidingStyles        *[]string       `json:"riding_styles"`

	// Media
	Photos        *[]string `json:"photos"`
	Videos        *[]string `json:"videos"`
	VideoIntroURL *string   `json:"video_intro_url"`
}

// comfortLevels is the nested comfort group; keys absent from the object
// leave the corresponding stored flag untouched on update.
type comfortLevels struct {
	Traffic       *bool `json:"traffic"`
	OutdoorSolo   *bool `json:"outdoor_solo"`
	NervousHorses *bool `json:"nervous_horses"`
	YoungHorses   *bool `json:"young_horses"`
	Stallions     *bool `json:"stallions"`
	TrailRides    *bool `json:"trail_rides"`
	JumpingHeight *int  `json:"jumping_height"`
}

type materialPreferences struct {
	BitlessOK      *bool `json:"bitless_ok"`
	Spurs          *bool `json:"spurs"`
	AuxiliaryReins *bool `json:"auxiliary_reins"`
	OwnHelmet      *bool `json:"own_helmet"`
}

// decodeComfortLevels parses the nested comfort object. A malformed value
// (non-object) is treated as absent, never as a request error.
func decodeComfortLevels(raw json.RawMessage) *comfortLevels {
	if len(raw) == 0 {
		return nil
	}
	var cl comfortLevels
	if err := json.Unmarshal(raw, &cl); err != nil {
		return nil
	}
	return &cl
}

func decodeMaterialPreferences(raw json.RawMessage) *materialPreferences {
	if len(raw) == 0 {
		return nil
	}
	var mp materialPreferences
	if err := json.Unmarshal(raw, &mp); err != nil {
		return nil
	}
	return &mp
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

// decodeObject parses a free-form nested object (lease preferences,
// desired horse); malformed input counts as absent.
func decodeObject(raw json.RawMessage) domain.JSONMap {
	if len(raw) == 0 {
		return nil
	}
	var obj domain.JSONMap
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil
	}
	return obj
}
