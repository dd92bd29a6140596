package horse

import (
	"encoding/json"

	"github.com/horsesharing/backend/internal/domain"
)

// HorseProfileRequest is the partial horse-ad payload. The optional ID
// routes the shared create endpoint to an update of an existing ad.
type HorseProfileRequest struct {
	ID *int `json:"id"`

	// Ad metadata
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	AdType      *string   `json:"ad_type"`
	AdTypes     *[]string `json:"ad_types"`
	AdReason    *string   `json:"ad_reason"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	NoEndDate   *bool     `json:"no_end_date"`

	// Media
	Photos        *[]string `json:"photos"`
	Videos        *[]string `json:"videos"`
	VideoIntroURL *string   `json:"video_intro_url"`

	// Basic attributes
	Name       *string   `json:"name"`
	Type       *string   `json:"type"`
	Height     *int      `json:"height" binding:"omitempty,min=50,max=250"`
	Age        *int      `json:"age" binding:"omitempty,min=0,max=50"`
	Gender     *string   `json:"gender"`
	Breed      *string   `json:"breed"`
	CoatColors *[]string `json:"coat_colors"`

	// Health & medical
	HealthRestrictions *[]string `json:"health_restrictions"`
	Medication         *string   `json:"medication"`
	FarrierSchedule    *string   `json:"farrier_schedule"`
	PhysioSchedule     *string   `json:"physio_schedule"`

	// Character
	EnergyLevel *string   `json:"energy_level"`
	Temperament *[]string `json:"temperament"`
	Triggers    *[]string `json:"triggers"`
	Enjoys      *[]string `json:"enjoys"`
	Dislikes    *[]string `json:"dislikes"`

	// Disciplines & level
	Disciplines   json.RawMessage `json:"disciplines"`
	Level         *string         `json:"level"`
	MaxJumpHeight *int            `json:"max_jump_height"`

	// Comfort flags and activity scope
	ComfortFlags        json.RawMessage `json:"comfort_flags"`
	ActivityMode        *string         `json:"activity_mode"`
	ActivityPreferences *[]string       `json:"activity_preferences"`
	MennenExperience    *string         `json:"mennen_experience"`

	// Suitability
	SuitableForBeginners       *bool `json:"suitable_for_beginners"`
	SuitableForAdvanced        *bool `json:"suitable_for_advanced"`
	SuitableForExperiencedOnly *bool `json:"suitable_for_experienced_only"`

	// Rider limits
	MaxRiderWeight *int `json:"max_rider_weight"`
	MinRiderHeight *int `json:"min_rider_height"`
	MaxRiderHeight *int `json:"max_rider_height"`

	// Equipment policy
	BitBitlessPolicy    *string `json:"bit_bitless_policy"`
	SpursAllowed        *bool   `json:"spurs_allowed"`
	TrainingAidsAllowed *bool   `json:"training_aids_allowed"`
	BarebackAllowed     *bool   `json:"bareback_allowed"`

	// Tasks & expectations
	RequiredTasks           *[]string       `json:"required_tasks"`
	OptionalTasks           *[]string       `json:"optional_tasks"`
	RequiredSkills          *[]string       `json:"required_skills"`
	DesiredRiderPersonality *[]string       `json:"desired_rider_personality"`
	TaskFrequency           *string         `json:"task_frequency"`
	Rules                   json.RawMessage `json:"rules"`

	// Facilities
	IndoorArena      *bool `json:"indoor_arena"`
	OutdoorArena     *bool `json:"outdoor_arena"`
	Lighting         *bool `json:"lighting"`
	LongeCircle      *bool `json:"longe_circle"`
	TrailAccess      *bool `json:"trail_access"`
	TrailerAvailable *bool `json:"trailer_available"`
	ToiletAvailable  *bool `json:"toilet_available"`
	LockerAvailable  *bool `json:"locker_available"`
	HorseWalker      *bool `json:"horse_walker"`

	// Stable address
	StablePostcode            *string  `json:"stable_postcode" binding:"omitempty,nl_postcode"`
	StableStreet              *string  `json:"stable_street"`
	StableHouseNumber         *string  `json:"stable_house_number"`
	StableHouseNumberAddition *string  `json:"stable_house_number_addition"`
	StableCity                *string  `json:"stable_city"`
	StableCountryCode         *string  `json:"stable_country_code"`
	StableLat                 *float64 `json:"stable_lat"`
	StableLon                 *float64 `json:"stable_lon"`

	// Availability & cost
	AvailableSchedule   json.RawMessage `json:"available_schedule"`
	AvailableDays       *[]string       `json:"available_days"`
	AvailableTimeBlocks *[]string       `json:"available_time_blocks"`
	MinDaysPerWeek      *int            `json:"min_days_per_week"`
	SessionDurationMin  *int            `json:"session_duration_min"`
	SessionDurationMax  *int            `json:"session_duration_max"`
	CostModel           *string         `json:"cost_model"`
	CostAmount          *int            `json:"cost_amount"`

	IsAvailable *bool     `json:"is_available"`
	NoGos       *[]string `json:"no_gos"`
}

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

func decodeStringMap(raw json.RawMessage) domain.StringMap {
	if len(raw) == 0 {
		return nil
	}
	var m domain.StringMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

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
