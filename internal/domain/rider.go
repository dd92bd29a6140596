package domain

import (
	"time"

	"github.com/lib/pq"
)

// Defaults substituted on create when the payload leaves a field absent.
const (
	DefaultTravelDistanceKm   = 25
	DefaultSessionDurationMin = 60
	DefaultSessionDurationMax = 120
	DefaultRiderAge           = 25
)

// RiderProfile is the persisted rider record, one per user.
type RiderProfile struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	// Media
	Photos     pq.StringArray `json:"photos" db:"photos"`
	Videos     pq.StringArray `json:"videos" db:"videos"`
	VideoIntro *string        `json:"video_intro" db:"video_intro"`

	// Location & travel
	Postcode          string         `json:"postcode" db:"postcode"`
	HouseNumber       *string        `json:"house_number" db:"house_number"`
	City              *string        `json:"city" db:"city"`
	MaxTravelDistance int            `json:"max_travel_distance" db:"max_travel_distance"`
	TransportOptions  pq.StringArray `json:"transport_options" db:"transport_options"`

	// Availability
	AvailableDays      Availability `json:"available_days" db:"available_days"`
	SessionDurationMin int          `json:"session_duration_min" db:"session_duration_min"`
	SessionDurationMax int          `json:"session_duration_max" db:"session_duration_max"`
	StartDate          *time.Time   `json:"start_date" db:"start_date"`
	DurationPreference *string      `json:"duration_preference" db:"duration_preference"`
	MinDaysPerWeek     *int         `json:"min_days_per_week" db:"min_days_per_week"`

	// Budget, euros per month
	BudgetMin *int `json:"budget_min" db:"budget_min"`
	BudgetMax *int `json:"budget_max" db:"budget_max"`

	// Experience
	YearsExperience *int           `json:"years_experience" db:"years_experience"`
	FNRSLevel       *string        `json:"fnrs_level" db:"fnrs_level"`
	KNHSLevel       *string        `json:"knhs_level" db:"knhs_level"`
	Certifications  pq.StringArray `json:"certifications" db:"certifications"`
	LessonHistory   *string        `json:"lesson_history" db:"lesson_history"`
	References      *string        `json:"references" db:"references"`

	// Comfort flags
	ComfortableWithTraffic       bool `json:"comfortable_with_traffic" db:"comfortable_with_traffic"`
	ComfortableSoloOutside       bool `json:"comfortable_solo_outside" db:"comfortable_solo_outside"`
	ComfortableWithNervousHorses bool `json:"comfortable_with_nervous_horses" db:"comfortable_with_nervous_horses"`
	ComfortableWithYoungHorses   bool `json:"comfortable_with_young_horses" db:"comfortable_with_young_horses"`
	ComfortableWithStallions     bool `json:"comfortable_with_stallions" db:"comfortable_with_stallions"`
	ComfortableWithTrailRides    bool `json:"comfortable_with_trail_rides" db:"comfortable_with_trail_rides"`
	MaxJumpHeight                *int `json:"max_jump_height" db:"max_jump_height"`

	// Activities
	ActivityMode        ActivityMode   `json:"activity_mode" db:"activity_mode"`
	ActivityPreferences pq.StringArray `json:"activity_preferences" db:"activity_preferences"`
	MennenExperience    *string        `json:"mennen_experience" db:"mennen_experience"`

	// Goals & preferences
	Goals                 pq.StringArray `json:"goals" db:"goals"`
	PersonalityStyle      pq.StringArray `json:"personality_style" db:"personality_style"`
	DisciplinePreferences pq.StringArray `json:"discipline_preferences" db:"discipline_preferences"`
	RidingStyles          pq.StringArray `json:"riding_styles" db:"riding_styles"`
	GeneralSkills         pq.StringArray `json:"general_skills" db:"general_skills"`

	// Tasks
	WillingTasks  pq.StringArray `json:"willing_tasks" db:"willing_tasks"`
	TaskFrequency *string        `json:"task_frequency" db:"task_frequency"`

	// Material preferences
	BitlessOK      bool `json:"bitless_ok" db:"bitless_ok"`
	SpursOK        bool `json:"spurs_ok" db:"spurs_ok"`
	TrainingAidsOK bool `json:"training_aids_ok" db:"training_aids_ok"`
	OwnHelmet      bool `json:"own_helmet" db:"own_helmet"`

	// Health, serialized text lists
	HealthLimitations string  `json:"health_limitations" db:"health_limitations"`
	FearsAnxieties    *string `json:"fears_anxieties" db:"fears_anxieties"`
	NoGos             string  `json:"no_gos" db:"no_gos"`

	// Body & bio
	RiderBio      *string `json:"rider_bio" db:"rider_bio"`
	RiderHeightCM *int    `json:"rider_height_cm" db:"rider_height_cm"`
	RiderWeightKG *int    `json:"rider_weight_kg" db:"rider_weight_kg"`

	// Age & consent
	DateOfBirth   *time.Time `json:"date_of_birth" db:"date_of_birth"`
	Age           int        `json:"age" db:"age"`
	ParentConsent *bool      `json:"parent_consent" db:"parent_consent"`
	ParentContact *string    `json:"parent_contact" db:"parent_contact"`

	// Insurance
	InsuranceCoverage bool    `json:"insurance_coverage" db:"insurance_coverage"`
	InsuranceDetails  *string `json:"insurance_details" db:"insurance_details"`

	// Structured preference objects
	LeasePreferences JSONMap `json:"lease_preferences" db:"lease_preferences"`
	DesiredHorse     JSONMap `json:"desired_horse" db:"desired_horse"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyActivityModeRules enforces cross-field consistency after the
// activity mode is known. It runs identically on create and update so
// stored state can never drift into an invalid combination.
func (p *RiderProfile) ApplyActivityModeRules() {
	if p.ActivityMode == "" {
		return
	}
	p.ActivityPreferences = FilterActivityPreferences(p.ActivityMode, p.ActivityPreferences)
	if !p.ActivityMode.AllowsDriving() {
		p.MennenExperience = nil
	}
	if !p.ActivityMode.AllowsRiding() {
		p.Goals = nil
		p.DisciplinePreferences = nil
	}
}
