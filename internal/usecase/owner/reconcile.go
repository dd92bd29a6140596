package owner

import (
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

// reconcileCreate builds a fresh owner profile from a partial payload,
// substituting defaults for absent fields.
func reconcileCreate(userID int, req *OwnerProfileRequest, now time.Time) *domain.OwnerProfile {
	p := &domain.OwnerProfile{
		UserID:        userID,
		VisibleRadius: domain.DefaultVisibleRadiusKm,
		AvailableDays: domain.Availability{},
	}
	reconcileInto(p, req, now)
	return p
}

// reconcileUpdate merges a partial payload into a copy of the stored
// profile; absent fields keep their stored value.
func reconcileUpdate(existing *domain.OwnerProfile, req *OwnerProfileRequest, now time.Time) *domain.OwnerProfile {
	p := *existing
	reconcileInto(&p, req, now)
	return &p
}

func reconcileInto(p *domain.OwnerProfile, req *OwnerProfileRequest, now time.Time) {
	if req.PhotoURL != nil {
		p.PhotoURL = req.PhotoURL
	}

	if req.CountryCode != nil {
		p.CountryCode = req.CountryCode
	}
	if req.Postcode != nil {
		p.Postcode = *req.Postcode
	}
	if req.Street != nil {
		p.Street = req.Street
	}
	if req.HouseNumber != nil {
		p.HouseNumber = req.HouseNumber
	}
	if req.HouseNumberAddition != nil {
		p.HouseNumberAddition = req.HouseNumberAddition
	}
	if req.City != nil {
		p.City = req.City
	}
	if req.Lat != nil {
		p.Lat = req.Lat
	}
	if req.Lon != nil {
		p.Lon = req.Lon
	}
	if req.GeocodeConfidence != nil {
		p.GeocodeConfidence = req.GeocodeConfidence
	}
	if req.NeedsReview != nil {
		p.NeedsReview = req.NeedsReview
	}
	if req.VisibleRadius != nil {
		p.VisibleRadius = *req.VisibleRadius
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
			days = p.AvailableDays.Days()
		}
		p.AvailableDays = domain.BuildAvailability(schedule, days, blocks)
	}
	if req.StartDate != nil {
		if start, err := domain.ParseBirthDate(*req.StartDate); err == nil {
			p.StartDate = &start
		}
	}
	if req.TrialPeriod != nil {
		p.TrialPeriod = req.TrialPeriod
	}
	if req.Duration != nil {
		p.Duration = req.Duration
	}

	if req.ContributionRequired != nil {
		p.ContributionRequired = req.ContributionRequired
	}
	if req.DepositRequired != nil {
		p.DepositRequired = req.DepositRequired
	}

	if req.InstructionAvailable != nil {
		p.InstructionAvailable = *req.InstructionAvailable
	}
	if req.InstructionRequired != nil {
		p.InstructionRequired = *req.InstructionRequired
	}
	if req.SupervisionRequired != nil {
		p.SupervisionRequired = *req.SupervisionRequired
	}

	if req.MinAgeRequirement != nil {
		p.MinAgeRequirement = req.MinAgeRequirement
	}
	if req.Under18Allowed != nil {
		p.Under18Allowed = *req.Under18Allowed
	}
	if req.IDRequired != nil {
		p.IDRequired = *req.IDRequired
	}
	if req.ContractRequired != nil {
		p.ContractRequired = *req.ContractRequired
	}

	if req.InsuranceRequired != nil {
		p.InsuranceRequired = *req.InsuranceRequired
	}
	if req.InsuranceRequirements != nil {
		p.InsuranceRequirements = req.InsuranceRequirements
	}

	if req.HelmetRequired != nil {
		p.HelmetRequired = *req.HelmetRequired
	}
	if req.BootsRequired != nil {
		p.BootsRequired = *req.BootsRequired
	}
	if req.StableRules != nil {
		p.StableRules = req.StableRules
	}

	if req.DateOfBirth != nil {
		if dob, err := domain.ParseBirthDate(*req.DateOfBirth); err == nil {
			p.DateOfBirth = &dob
		}
	}
	if req.ParentConsent != nil {
		// Recording fresh consent stamps the moment it was given.
		if *req.ParentConsent && (p.ParentConsent == nil || !*p.ParentConsent) {
			stamp := now
			p.ParentConsentTimestamp = &stamp
		}
		p.ParentConsent = req.ParentConsent
	}
	if req.ParentName != nil {
		p.ParentName = req.ParentName
	}
	if req.ParentEmail != nil {
		p.ParentEmail = req.ParentEmail
	}
}
