package domain

import (
	"fmt"
	"time"
)

// Date-of-birth wire formats, tried in order.
var dobLayouts = []string{"02-01-2006", "2006-01-02"}

// ParseBirthDate parses a date of birth in either DD-MM-YYYY or
// YYYY-MM-DD form.
func ParseBirthDate(s string) (time.Time, error) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date of birth %q", s)
}

// AgeAt computes whole years between dob and now, adjusted down when the
// birthday has not yet been reached in the current year.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
