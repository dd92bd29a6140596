package rider

import (
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

// RiderProfileView is the read-model returned to clients. It re-nests the
// grouped objects the payload accepts flat-or-nested, splits the stored
// display name into first and last, and decodes the serialized text lists
// so callers never see storage encodings.
type RiderProfileView struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`

	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     string  `json:"email"`

	Photos     []string `json:"photos"`
	Videos     []string `json:"videos"`
	VideoIntro *string  `json:"video_intro_url"`

	Postcode            string   `json:"postcode"`
	HouseNumber         *string  `json:"house_number"`
	City                *string  `json:"city"`
	MaxTravelDistanceKm int      `json:"max_travel_distance_km"`
	TransportOptions    []string `json:"transport_options"`

	AvailableSchedule   domain.Availability `json:"available_schedule"`
	AvailableDays       []string            `json:"available_days"`
	AvailableTimeBlocks []string            `json:"available_time_blocks"`
	SessionDurationMin  int                 `json:"session_duration_min"`
	SessionDurationMax  int                 `json:"session_duration_max"`
	StartDate           *string             `json:"start_date"`
	ArrangementDuration *string             `json:"arrangement_duration"`
	MinDaysPerWeek      *int                `json:"min_days_per_week"`

	BudgetMinEuro *int `json:"budget_min_euro"`
	BudgetMaxEuro *int `json:"budget_max_euro"`

	ExperienceYears    *int     `json:"experience_years"`
	CertificationLevel *string  `json:"certification_level"`
	Certifications     []string `json:"certifications"`

	ComfortLevels comfortLevelsView `json:"comfort_levels"`

	ActivityMode        string   `json:"activity_mode"`
	ActivityPreferences []string `json:"activity_preferences"`
	MennenExperience    *string  `json:"mennen_experience"`

	RidingGoals           []string `json:"riding_goals"`
	DisciplinePreferences []string `json:"discipline_preferences"`
	PersonalityStyle      []string `json:"personality_style"`
	GeneralSkills         []string `json:"general_skills"`
	RidingStyles          []string `json:"riding_styles"`

	WillingTasks  []string `json:"willing_tasks"`
	TaskFrequency *string  `json:"task_frequency"`

	MaterialPreferences materialPreferencesView `json:"material_preferences"`
	LeasePreferences    domain.JSONMap          `json:"lease_preferences"`
	DesiredHorse        domain.JSONMap          `json:"desired_horse"`

	HealthRestrictions []string `json:"health_restrictions"`
	InsuranceCoverage  bool     `json:"insurance_coverage"`
	NoGos              []string `json:"no_gos"`

	RiderBio      *string `json:"rider_bio"`
	RiderHeightCM *int    `json:"rider_height_cm"`
	RiderWeightKG *int    `json:"rider_weight_kg"`

	DateOfBirth   *string `json:"date_of_birth"`
	Age           int     `json:"age"`
	ParentConsent *bool   `json:"parent_consent"`
	ParentContact *string `json:"parent_contact"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type comfortLevelsView struct {
	Traffic       bool `json:"traffic"`
	OutdoorSolo   bool `json:"outdoor_solo"`
	NervousHorses bool `json:"nervous_horses"`
	YoungHorses   bool `json:"young_horses"`
	Stallions     bool `json:"stallions"`
	TrailRides    bool `json:"trail_rides"`
	JumpingHeight int  `json:"jumping_height"`
}

type materialPreferencesView struct {
	BitlessOK      bool `json:"bitless_ok"`
	Spurs          bool `json:"spurs"`
	AuxiliaryReins bool `json:"auxiliary_reins"`
	OwnHelmet      bool `json:"own_helmet"`
}

// newRiderProfileView builds the read-model from the stored profile and
// its owning user record.
func newRiderProfileView(p *domain.RiderProfile, u *domain.User) *RiderProfileView {
	first, last := domain.SplitName(u.Name)
	schedule := p.AvailableDays
	if schedule == nil {
		schedule = domain.Availability{}
	}
	v := &RiderProfileView{
		ID:     p.ID,
		UserID: p.UserID,

		FirstName: first,
		LastName:  last,
		Phone:     u.Phone,
		Email:     u.Email,

		Photos:     emptyIfNil(p.Photos),
		Videos:     emptyIfNil(p.Videos),
		VideoIntro: p.VideoIntro,

		Postcode:            p.Postcode,
		HouseNumber:         p.HouseNumber,
		City:                p.City,
		MaxTravelDistanceKm: p.MaxTravelDistance,
		TransportOptions:    emptyIfNil(p.TransportOptions),

		AvailableSchedule:   schedule,
		AvailableDays:       schedule.Days(),
		AvailableTimeBlocks: schedule.Blocks(),
		SessionDurationMin:  p.SessionDurationMin,
		SessionDurationMax:  p.SessionDurationMax,
		StartDate:           formatDate(p.StartDate),
		ArrangementDuration: p.DurationPreference,
		MinDaysPerWeek:      p.MinDaysPerWeek,

		BudgetMinEuro: p.BudgetMin,
		BudgetMaxEuro: p.BudgetMax,

		ExperienceYears:    p.YearsExperience,
		CertificationLevel: p.FNRSLevel,
		Certifications:     emptyIfNil(p.Certifications),

		ComfortLevels: comfortLevelsView{
			Traffic:       p.ComfortableWithTraffic,
			OutdoorSolo:   p.ComfortableSoloOutside,
			NervousHorses: p.ComfortableWithNervousHorses,
			YoungHorses:   p.ComfortableWithYoungHorses,
			Stallions:     p.ComfortableWithStallions,
			TrailRides:    p.ComfortableWithTrailRides,
			JumpingHeight: zeroIfNil(p.MaxJumpHeight),
		},

		ActivityMode:        string(p.ActivityMode),
		ActivityPreferences: emptyIfNil(p.ActivityPreferences),
		MennenExperience:    p.MennenExperience,

		RidingGoals:           emptyIfNil(p.Goals),
		DisciplinePreferences: emptyIfNil(p.DisciplinePreferences),
		PersonalityStyle:      emptyIfNil(p.PersonalityStyle),
		GeneralSkills:         emptyIfNil(p.GeneralSkills),
		RidingStyles:          emptyIfNil(p.RidingStyles),

		WillingTasks:  emptyIfNil(p.WillingTasks),
		TaskFrequency: p.TaskFrequency,

		MaterialPreferences: materialPreferencesView{
			BitlessOK:      p.BitlessOK,
			Spurs:          p.SpursOK,
			AuxiliaryReins: p.TrainingAidsOK,
			OwnHelmet:      p.OwnHelmet,
		},
		LeasePreferences: emptyMapIfNil(p.LeasePreferences),
		DesiredHorse:     emptyMapIfNil(p.DesiredHorse),

		HealthRestrictions: domain.DecodeTextList(p.HealthLimitations),
		InsuranceCoverage:  p.InsuranceCoverage,
		NoGos:              domain.DecodeTextList(p.NoGos),

		RiderBio:      p.RiderBio,
		RiderHeightCM: p.RiderHeightCM,
		RiderWeightKG: p.RiderWeightKG,

		DateOfBirth:   formatDate(p.DateOfBirth),
		Age:           p.Age,
		ParentConsent: p.ParentConsent,
		ParentContact: p.ParentContact,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	return v
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func emptyMapIfNil(m domain.JSONMap) domain.JSONMap {
	if m == nil {
		return domain.JSONMap{}
	}
	return m
}

func zeroIfNil(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
