package rider

import (
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

// reconcileCreate builds a fresh profile from a partial payload,
// substituting documented defaults for absent fields. It is pure: the same
// payload at the same instant always yields the same draft.
func reconcileCreate(userID int, req *RiderProfileRequest, now time.Time) *domain.RiderProfile {
	p := &domain.RiderProfile{
		UserID:             userID,
		MaxTravelDistance:  domain.DefaultTravelDistanceKm,
		SessionDurationMin: domain.DefaultSessionDurationMin,
		SessionDurationMax: domain.DefaultSessionDurationMax,
		Age:                domain.DefaultRiderAge,
		BitlessOK:          true,
		TrainingAidsOK:     true,
		OwnHelmet:          true,
		AvailableDays:      domain.Availability{},
	}
	reconcileInto(p, req, now)
	return p
}

// reconcileUpdate merges a partial payload into a copy of the stored
// profile. Absent fields keep their stored value; that is the whole
// contract distinguishing update from create.
func reconcileUpdate(existing *domain.RiderProfile, req *RiderProfileRequest, now time.Time) *domain.RiderProfile {
	p := *existing
	reconcileInto(&p, req, now)
	return &p
}

// reconcileInto applies every present payload field to the draft and then
// enforces activity-mode consistency. Shared by create and update so the
// two paths cannot diverge.
func reconcileInto(p *domain.RiderProfile, req *RiderProfileRequest, now time.Time) {
	if req.Postcode != nil {
		p.Postcode = *req.Postcode
	}
	if req.HouseNumber != nil {
		p.HouseNumber = req.HouseNumber
	}
	if req.City != nil {
		p.City = req.City
	}
	if req.MaxTravelDistanceKm != nil {
		p.MaxTravelDistance = *req.MaxTravelDistanceKm
	}
	if req.TransportOptions != nil {
		p.TransportOptions = *req.TransportOptions
	}
	if req.RiderBio != nil {
		p.RiderBio = req.RiderBio
	}
	if req.RiderHeightCM != nil {
		p.RiderHeightCM = req.RiderHeightCM
	}
	if req.RiderWeightKG != nil {
		p.RiderWeightKG = req.RiderWeightKG
	}
	if req.ParentConsent != nil {
		p.ParentConsent = req.ParentConsent
	}
	if req.ParentContact != nil {
		p.ParentContact = req.ParentContact
	}

	// Date of birth: unparseable input is fatal to this sub-step only;
	// the date stays unset and the age keeps its previous value.
	if req.DateOfBirth != nil {
		if dob, err := domain.ParseBirthDate(*req.DateOfBirth); err == nil {
			p.DateOfBirth = &dob
			p.Age = domain.AgeAt(dob, now)
		}
	}

	// Availability: any of the three representations present rebuilds the
	// mapping, with the explicit schedule taking precedence.
	schedule := decodeSchedule(req.AvailableSchedule)
	if len(schedule) > 0 || req.AvailableDays != nil || req.AvailableTimeBlocks != nil {
		var days, blocks []string
		if req.AvailableDays != nil {
			days = *req.AvailableDays
		}
		if req.AvailableTimeBlocks != nil {
			blocks = *req.AvailableTimeBlocks
		}
		// A blocks-only payload re-times the days already on file
		// instead of wiping the mapping.
		if len(schedule) == 0 && req.AvailableDays == nil {
			days = p.AvailableDays.Days()
		}
		p.AvailableDays = domain.BuildAvailability(schedule, days, blocks)
	}
	if req.SessionDurationMin != nil {
		p.SessionDurationMin = *req.SessionDurationMin
	}
	if req.SessionDurationMax != nil {
		p.SessionDurationMax = *req.SessionDurationMax
	}
	if req.StartDate != nil {
		if start, err := domain.ParseBirthDate(*req.StartDate); err == nil {
			p.StartDate = &start
		}
	}
	if req.ArrangementDuration != nil {
		p.DurationPreference = req.ArrangementDuration
	}
	if req.MinDaysPerWeek != nil {
		p.MinDaysPerWeek = req.MinDaysPerWeek
	}

	if req.BudgetMinEuro != nil {
		p.BudgetMin = req.BudgetMinEuro
	}
	if req.BudgetMaxEuro != nil {
		p.BudgetMax = req.BudgetMaxEuro
	}

	if req.ExperienceYears != nil {
		p.YearsExperience = req.ExperienceYears
	}
	if req.CertificationLevel != nil {
		p.FNRSLevel = req.CertificationLevel
	}
	if req.Certifications != nil {
		p.Certifications = *req.Certifications
	}

	// Comfort flags fan out from the nested object, only for present keys.
	if cl := decodeComfortLevels(req.ComfortLevels); cl != nil {
		if cl.Traffic != nil {
			p.ComfortableWithTraffic = *cl.Traffic
		}
		if cl.OutdoorSolo != nil {
			p.ComfortableSoloOutside = *cl.OutdoorSolo
		}
		if cl.NervousHorses != nil {
			p.ComfortableWithNervousHorses = *cl.NervousHorses
		}
		if cl.YoungHorses != nil {
			p.ComfortableWithYoungHorses = *cl.YoungHorses
		}
		if cl.Stallions != nil {
			p.ComfortableWithStallions = *cl.Stallions
		}
		if cl.TrailRides != nil {
			p.ComfortableWithTrailRides = *cl.TrailRides
		}
		if cl.JumpingHeight != nil {
			p.MaxJumpHeight = cl.JumpingHeight
		}
	}

	if req.ActivityMode != nil && domain.ActivityMode(*req.ActivityMode).Valid() {
		p.ActivityMode = domain.ActivityMode(*req.ActivityMode)
	}
	if req.ActivityPreferences != nil {
		p.ActivityPreferences = *req.ActivityPreferences
	}
	if req.MennenExperience != nil {
		p.MennenExperience = req.MennenExperience
	}

	if req.RidingGoals != nil {
		p.Goals = *req.RidingGoals
	}
	if req.DisciplinePreferences != nil {
		p.DisciplinePreferences = *req.DisciplinePreferences
	}
	if req.PersonalityStyle != nil {
		p.PersonalityStyle = *req.PersonalityStyle
	}
	if req.GeneralSkills != nil {
		p.GeneralSkills = *req.GeneralSkills
	}

	if req.WillingTasks != nil {
		p.WillingTasks = *req.WillingTasks
	}
	if req.TaskFrequency != nil {
		p.TaskFrequency = req.TaskFrequency
	}

	if mp := decodeMaterialPreferences(req.MaterialPreferences); mp != nil {
		if mp.BitlessOK != nil {
			p.BitlessOK = *mp.BitlessOK
		}
		if mp.Spurs != nil {
			p.SpursOK = *mp.Spurs
		}
		if mp.AuxiliaryReins != nil {
			p.TrainingAidsOK = *mp.AuxiliaryReins
		}
		if mp.OwnHelmet != nil {
			p.OwnHelmet = *mp.OwnHelmet
		}
	}
	if lease := decodeObject(req.LeasePreferences); lease != nil {
		p.LeasePreferences = lease
	}
	if horse := decodeObject(req.DesiredHorse); horse != nil {
		p.DesiredHorse = horse
	}
	if req.HealthRestrictions != nil {
		p.HealthLimitations = domain.EncodeTextList(*req.HealthRestrictions)
	}
	if req.InsuranceCoverage != nil {
		p.InsuranceCoverage = *req.InsuranceCoverage
	}
	if req.NoGos != nil {
		p.NoGos = domain.EncodeTextList(*req.NoGos)
	}
	if req.RidingStyles != nil {
		p.RidingStyles = *req.RidingStyles
	}

	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if req.Videos != nil {
		p.Videos = *req.Videos
	}
	if req.VideoIntroURL != nil {
		p.VideoIntro = req.VideoIntroURL
	}

	p.ApplyActivityModeRules()
}
