package horse

import (
	"github.com/horsesharing/backend/internal/domain"
)

// reconcileCreate builds a fresh horse ad from a partial payload. New ads
// are listed as available until the owner says otherwise.
func reconcileCreate(ownerProfileID int, req *HorseProfileRequest) *domain.HorseProfile {
	h := &domain.HorseProfile{
		OwnerProfileID: ownerProfileID,
		IsAvailable:    true,
		AvailableDays:  domain.Availability{},
	}
	reconcileInto(h, req)
	return h
}

// reconcileUpdate merges a partial payload into a copy of the stored ad;
// absent fields keep their stored value.
func reconcileUpdate(existing *domain.HorseProfile, req *HorseProfileRequest) *domain.HorseProfile {
	h := *existing
	reconcileInto(&h, req)
	return &h
}

func reconcileInto(h *domain.HorseProfile, req *HorseProfileRequest) {
	if req.Title != nil {
		h.Title = req.Title
	}
	if req.Description != nil {
		h.Description = req.Description
	}
	if req.AdType != nil {
		h.AdType = req.AdType
	}
	if req.AdTypes != nil {
		h.AdTypes = *req.AdTypes
	}
	if req.AdReason != nil {
		h.AdReason = req.AdReason
	}
	if req.StartDate != nil {
		if start, err := domain.ParseBirthDate(*req.StartDate); err == nil {
			h.StartDate = &start
		}
	}
	if req.EndDate != nil {
		if end, err := domain.ParseBirthDate(*req.EndDate); err == nil {
			h.EndDate = &end
		}
	}
	if req.NoEndDate != nil {
		h.NoEndDate = *req.NoEndDate
		if h.NoEndDate {
			h.EndDate = nil
		}
	}

	if req.Photos != nil {
		h.Photos = *req.Photos
	}
	if req.Videos != nil {
		h.Videos = *req.Videos
	}
	if req.VideoIntroURL != nil {
		h.Video = req.VideoIntroURL
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Type != nil {
		h.Type = *req.Type
	}
	if req.Height != nil {
		h.Height = req.Height
	}
	if req.Age != nil {
		h.Age = req.Age
	}
	if req.Gender != nil {
		h.Gender = req.Gender
	}
	if req.Breed != nil {
		h.Breed = req.Breed
	}
	if req.CoatColors != nil {
		h.CoatColors = *req.CoatColors
	}

	if req.HealthRestrictions != nil {
		h.HealthRestrictions = domain.EncodeTextList(*req.HealthRestrictions)
	}
	if req.Medication != nil {
		h.Medication = req.Medication
	}
	if req.FarrierSchedule != nil {
		h.FarrierSchedule = req.FarrierSchedule
	}
	if req.PhysioSchedule != nil {
		h.PhysioSchedule = req.PhysioSchedule
	}

	if req.EnergyLevel != nil {
		h.EnergyLevel = req.EnergyLevel
	}
	if req.Temperament != nil {
		h.Temperament = *req.Temperament
	}
	if req.Triggers != nil {
		h.Triggers = *req.Triggers
	}
	if req.Enjoys != nil {
		h.Enjoys = *req.Enjoys
	}
	if req.Dislikes != nil {
		h.Dislikes = *req.Dislikes
	}

	if m := decodeStringMap(req.Disciplines); m != nil {
		h.Disciplines = m
	}
	if req.Level != nil {
		h.Level = req.Level
	}
	if req.MaxJumpHeight != nil {
		h.MaxJumpHeight = req.MaxJumpHeight
	}

	if flags := decodeObject(req.ComfortFlags); flags != nil {
		h.ComfortFlags = flags
	}
	if req.ActivityMode != nil && domain.ActivityMode(*req.ActivityMode).Valid() {
		h.ActivityMode = domain.ActivityMode(*req.ActivityMode)
	}
	if req.ActivityPreferences != nil {
		h.ActivityPreferences = *req.ActivityPreferences
	}
	if req.MennenExperience != nil {
		h.MennenExperience = req.MennenExperience
	}

	if req.SuitableForBeginners != nil {
		h.SuitableForBeginners = *req.SuitableForBeginners
	}
	if req.SuitableForAdvanced != nil {
		h.SuitableForAdvanced = *req.SuitableForAdvanced
	}
	if req.SuitableForExperiencedOnly != nil {
		h.SuitableForExperiencedOnly = *req.SuitableForExperiencedOnly
	}

	if req.MaxRiderWeight != nil {
		h.MaxRiderWeight = req.MaxRiderWeight
	}
	if req.MinRiderHeight != nil {
		h.MinRiderHeight = req.MinRiderHeight
	}
	if req.MaxRiderHeight != nil {
		h.MaxRiderHeight = req.MaxRiderHeight
	}

	if req.BitBitlessPolicy != nil {
		h.BitBitlessPolicy = req.BitBitlessPolicy
	}
	if req.SpursAllowed != nil {
		h.SpursAllowed = *req.SpursAllowed
	}
	if req.TrainingAidsAllowed != nil {
		h.TrainingAidsAllowed = *req.TrainingAidsAllowed
	}
	if req.BarebackAllowed != nil {
		h.BarebackAllowed = *req.BarebackAllowed
	}

	if req.RequiredTasks != nil {
		h.RequiredTasks = *req.RequiredTasks
	}
	if req.OptionalTasks != nil {
		h.OptionalTasks = *req.OptionalTasks
	}
	if req.RequiredSkills != nil {
		h.RequiredSkills = *req.RequiredSkills
	}
	if req.DesiredRiderPersonality != nil {
		h.DesiredRiderPersonality = *req.DesiredRiderPersonality
	}
	if req.TaskFrequency != nil {
		h.TaskFrequency = req.TaskFrequency
	}
	if rules := decodeObject(req.Rules); rules != nil {
		h.Rules = rules
	}

	if req.IndoorArena != nil {
		h.IndoorArena = *req.IndoorArena
	}
	if req.OutdoorArena != nil {
		h.OutdoorArena = *req.OutdoorArena
	}
	if req.Lighting != nil {
		h.Lighting = *req.Lighting
	}
	if req.LongeCircle != nil {
		h.LongeCircle = *req.LongeCircle
	}
	if req.TrailAccess != nil {
		h.TrailAccess = *req.TrailAccess
	}
	if req.TrailerAvailable != nil {
		h.TrailerAvailable = *req.TrailerAvailable
	}
	if req.ToiletAvailable != nil {
		h.ToiletAvailable = *req.ToiletAvailable
	}
	if req.LockerAvailable != nil {
		h.LockerAvailable = *req.LockerAvailable
	}
	if req.HorseWalker != nil {
		h.HorseWalker = *req.HorseWalker
	}

	if req.StablePostcode != nil {
		h.StablePostcode = req.StablePostcode
	}
	if req.StableStreet != nil {
		h.StableStreet = req.StableStreet
	}
	if req.StableHouseNumber != nil {
		h.StableHouseNumber = req.StableHouseNumber
	}
	if req.StableHouseNumberAddition != nil {
		h.StableHouseNumberAddition = req.StableHouseNumberAddition
	}
	if req.StableCity != nil {
		h.StableCity = req.StableCity
	}
	if req.StableCountryCode != nil {
		h.StableCountryCode = req.StableCountryCode
	}
	if req.StableLat != nil {
		h.StableLat = req.StableLat
	}
	if req.StableLon != nil {
		h.StableLon = req.StableLon
	}

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
			days = h.AvailableDays.Days()
		}
		h.AvailableDays = domain.BuildAvailability(schedule, days, blocks)
	}
	if req.MinDaysPerWeek != nil {
		h.MinDaysPerWeek = req.MinDaysPerWeek
	}
	if req.SessionDurationMin != nil {
		h.SessionDurationMin = req.SessionDurationMin
	}
	if req.SessionDurationMax != nil {
		h.SessionDurationMax = req.SessionDurationMax
	}
	if req.CostModel != nil {
		h.CostModel = req.CostModel
	}
	if req.CostAmount != nil {
		h.CostAmount = req.CostAmount
	}

	if req.IsAvailable != nil {
		h.IsAvailable = *req.IsAvailable
	}
	if req.NoGos != nil {
		h.NoGos = domain.EncodeTextList(*req.NoGos)
	}

	h.ApplyActivityModeRules()
}
