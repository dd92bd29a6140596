package domain

import (
	"time"

	"github.com/lib/pq"
)

// HorseProfile is a horse ad owned by an owner profile. Comfort flags and
// the activity mode mirror the rider-side vocabulary so the two can be
// compared by a future matching pass.
type HorseProfile struct {
	ID             int `json:"id" db:"id"`
	OwnerProfileID int `json:"owner_profile_id" db:"owner_profile_id"`

	// Ad metadata
	Title       *string        `json:"title" db:"title"`
	Description *string        `json:"description" db:"description"`
	AdType      *string        `json:"ad_type" db:"ad_type"`
	AdTypes     pq.StringArray `json:"ad_types" db:"ad_types"`
	AdReason    *string        `json:"ad_reason" db:"ad_reason"`
	StartDate   *time.Time     `json:"start_date" db:"start_date"`
	EndDate     *time.Time     `json:"end_date" db:"end_date"`
	NoEndDate   bool           `json:"no_end_date" db:"no_end_date"`

	// Media
	Photos pq.StringArray `json:"photos" db:"photos"`
	Videos pq.StringArray `json:"videos" db:"videos"`
	Video  *string        `json:"video" db:"video"`

	// Basic attributes
	Name       string         `json:"name" db:"name"`
	Type       string         `json:"type" db:"type"`
	Height     *int           `json:"height" db:"height"`
	Age        *int           `json:"age" db:"age"`
	Gender     *string        `json:"gender" db:"gender"`
	Breed      *string        `json:"breed" db:"breed"`
	CoatColors pq.StringArray `json:"coat_colors" db:"coat_colors"`

	// Health & medical; restrictions is a serialized text list
	HealthRestrictions string  `json:"health_restrictions" db:"health_restrictions"`
	Medication         *string `json:"medication" db:"medication"`
	FarrierSchedule    *string `json:"farrier_schedule" db:"farrier_schedule"`
	PhysioSchedule     *string `json:"physio_schedule" db:"physio_schedule"`

	// Character
	EnergyLevel *string        `json:"energy_level" db:"energy_level"`
	Temperament pq.StringArray `json:"temperament" db:"temperament"`
	Triggers    pq.StringArray `json:"triggers" db:"triggers"`
	Enjoys      pq.StringArray `json:"enjoys" db:"enjoys"`
	Dislikes    pq.StringArray `json:"dislikes" db:"dislikes"`

	// Disciplines & level
	Disciplines   StringMap `json:"disciplines" db:"disciplines"`
	Level         *string   `json:"level" db:"level"`
	MaxJumpHeight *int      `json:"max_jump_height" db:"max_jump_height"`

	// Comfort flags and activity scope, rider-vocabulary mirror
	ComfortFlags        JSONMap        `json:"comfort_flags" db:"comfort_flags"`
	ActivityMode        ActivityMode   `json:"activity_mode" db:"activity_mode"`
	ActivityPreferences pq.StringArray `json:"activity_preferences" db:"activity_preferences"`
	MennenExperience    *string        `json:"mennen_experience" db:"mennen_experience"`

	// Suitability
	SuitableForBeginners       bool `json:"suitable_for_beginners" db:"suitable_for_beginners"`
	SuitableForAdvanced        bool `json:"suitable_for_advanced" db:"suitable_for_advanced"`
	SuitableForExperiencedOnly bool `json:"suitable_for_experienced_only" db:"suitable_for_experienced_only"`

	// Rider limits
	MaxRiderWeight *int `json:"max_rider_weight" db:"max_rider_weight"`
	MinRiderHeight *int `json:"min_rider_height" db:"min_rider_height"`
	MaxRiderHeight *int `json:"max_rider_height" db:"max_rider_height"`

	// Equipment policy
	BitBitlessPolicy    *string `json:"bit_bitless_policy" db:"bit_bitless_policy"`
	SpursAllowed        bool    `json:"spurs_allowed" db:"spurs_allowed"`
	TrainingAidsAllowed bool    `json:"training_aids_allowed" db:"training_aids_allowed"`
	BarebackAllowed     bool    `json:"bareback_allowed" db:"bareback_allowed"`

	// Tasks & expectations
	RequiredTasks           pq.StringArray `json:"required_tasks" db:"required_tasks"`
	OptionalTasks           pq.StringArray `json:"optional_tasks" db:"optional_tasks"`
	RequiredSkills          pq.StringArray `json:"required_skills" db:"required_skills"`
	DesiredRiderPersonality pq.StringArray `json:"desired_rider_personality" db:"desired_rider_personality"`
	TaskFrequency           *string        `json:"task_frequency" db:"task_frequency"`
	Rules                   JSONMap        `json:"rules" db:"rules"`

	// Facilities
	IndoorArena      bool `json:"indoor_arena" db:"indoor_arena"`
	OutdoorArena     bool `json:"outdoor_arena" db:"outdoor_arena"`
	Lighting         bool `json:"lighting" db:"lighting"`
	LongeCircle      bool `json:"longe_circle" db:"longe_circle"`
	TrailAccess      bool `json:"trail_access" db:"trail_access"`
	TrailerAvailable bool `json:"trailer_available" db:"trailer_available"`
	ToiletAvailable  bool `json:"toilet_available" db:"toilet_available"`
	LockerAvailable  bool `json:"locker_available" db:"locker_available"`
	HorseWalker      bool `json:"horse_walker" db:"horse_walker"`

	// Stable address, when the horse is kept away from the owner address
	StablePostcode            *string  `json:"stable_postcode" db:"stable_postcode"`
	StableStreet              *string  `json:"stable_street" db:"stable_street"`
	StableHouseNumber         *string  `json:"stable_house_number" db:"stable_house_number"`
	StableHouseNumberAddition *string  `json:"stable_house_number_addition" db:"stable_house_number_addition"`
	StableCity                *string  `json:"stable_city" db:"stable_city"`
	StableCountryCode         *string  `json:"stable_country_code" db:"stable_country_code"`
	StableLat                 *float64 `json:"stable_lat" db:"stable_lat"`
	StableLon                 *float64 `json:"stable_lon" db:"stable_lon"`

	// Availability & cost
	AvailableDays      Availability `json:"available_days" db:"available_days"`
	MinDaysPerWeek     *int         `json:"min_days_per_week" db:"min_days_per_week"`
	SessionDurationMin *int         `json:"session_duration_min" db:"session_duration_min"`
	SessionDurationMax *int         `json:"session_duration_max" db:"session_duration_max"`
	CostModel          *string      `json:"cost_model" db:"cost_model"`
	CostAmount         *int         `json:"cost_amount" db:"cost_amount"`

	IsAvailable bool   `json:"is_available" db:"is_available"`
	NoGos       string `json:"no_gos" db:"no_gos"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyActivityModeRules mirrors the rider-side consistency rule for
// horse ads.
func (h *HorseProfile) ApplyActivityModeRules() {
	if h.ActivityMode == "" {
		return
	}
	h.ActivityPreferences = FilterActivityPreferences(h.ActivityMode, h.ActivityPreferences)
	if !h.ActivityMode.AllowsDriving() {
		h.MennenExperience = nil
	}
	if !h.ActivityMode.AllowsRiding() {
		h.Disciplines = nil
	}
}
