package domain

// ActivityMode constrains which activity preferences and goal fields are
// meaningful for a rider or a horse ad.
type ActivityMode string

const (
	ActivityCareOnly   ActivityMode = "care_only"
	ActivityRideOnly   ActivityMode = "ride_only"
	ActivityRideOrCare ActivityMode = "ride_or_care"
	ActivityDriveOnly  ActivityMode = "drive_only"
)

// Activity vocabularies. Dutch keys match what the frontend sends.
var (
	CareActivities = []string{"verzorging", "grondwerk", "longeren", "wandelen"}
	RideActivities = []string{"buitenritten", "dressuur", "springen", "recreatie"}
)

// Valid reports whether m is one of the four known modes.
func (m ActivityMode) Valid() bool {
	switch m {
	case ActivityCareOnly, ActivityRideOnly, ActivityRideOrCare, ActivityDriveOnly:
		return true
	}
	return false
}

// AllowsRiding reports whether riding goals and discipline preferences are
// meaningful under this mode.
func (m ActivityMode) AllowsRiding() bool {
	return m == ActivityRideOnly || m == ActivityRideOrCare
}

// AllowsDriving reports whether mennen (driving) experience is meaningful.
func (m ActivityMode) AllowsDriving() bool {
	return m == ActivityDriveOnly
}

// AllowedActivities returns the preference keys valid under this mode.
func (m ActivityMode) AllowedActivities() []string {
	switch m {
	case ActivityCareOnly:
		return CareActivities
	case ActivityRideOnly:
		return RideActivities
	case ActivityRideOrCare:
		return append(append([]string(nil), CareActivities...), RideActivities...)
	default:
		// drive_only and unknown modes allow none
		return nil
	}
}

// FilterActivityPreferences drops every preference key outside the allowed
// subset for the mode, preserving input order.
func FilterActivityPreferences(mode ActivityMode, prefs []string) []string {
	allowed := make(map[string]bool)
	for _, key := range mode.AllowedActivities() {
		allowed[key] = true
	}
	out := make([]string, 0, len(prefs))
	for _, key := range prefs {
		if allowed[key] {
			out = append(out, key)
		}
	}
	return out
}
