package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Week days in calendar order; availability keys are restricted to these.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// TimeBlocks are the schedulable parts of a day.
var TimeBlocks = []string{"morning", "afternoon", "evening"}

// Availability maps a day name to the time blocks available on that day.
// It is the single source of truth; flat day and block lists are derived
// views of it. Stored as a JSONB column.
type Availability map[string][]string

// BuildAvailability resolves the two wire representations into one mapping.
// An explicit per-day schedule wins; otherwise the flat day list is zipped
// against the flat block list so every listed day gets the full block set.
func BuildAvailability(schedule Availability, days, blocks []string) Availability {
	if len(schedule) > 0 {
		out := make(Availability, len(schedule))
		for day, dayBlocks := range schedule {
			out[day] = dedupe(dayBlocks)
		}
		return out
	}
	out := make(Availability, len(days))
	blockSet := dedupe(blocks)
	for _, day := range dedupe(days) {
		out[day] = append(make([]string, 0, len(blockSet)), blockSet...)
	}
	return out
}

// Days returns the deduplicated day names in calendar order, followed by
// any keys outside the known week days in lexical order.
func (a Availability) Days() []string {
	present := make(map[string]bool, len(a))
	for day := range a {
		present[day] = true
	}
	out := make([]string, 0, len(a))
	for _, day := range WeekDays {
		if present[day] {
			out = append(out, day)
			delete(present, day)
		}
	}
	rest := make([]string, 0, len(present))
	for day := range present {
		rest = append(rest, day)
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// Blocks returns the deduplicated union of all time blocks used on any day.
func (a Availability) Blocks() []string {
	seen := make(map[string]bool)
	var out []string
	for _, block := range TimeBlocks {
		for _, day := range a.Days() {
			if containsString(a[day], block) && !seen[block] {
				seen[block] = true
				out = append(out, block)
			}
		}
	}
	// keep blocks outside the known vocabulary too
	for _, day := range a.Days() {
		for _, block := range a[day] {
			if !seen[block] {
				seen[block] = true
				out = append(out, block)
			}
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *Availability) Scan(src interface{}) error {
	if src == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported availability column type %T", src)
	}
	if len(data) == 0 {
		*a = nil
		return nil
	}
	return json.Unmarshal(data, a)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
