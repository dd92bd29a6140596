package rider

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func strsPtr(s ...string) *[]string { return &s }

func TestReconcileCreateDefaults(t *testing.T) {
	p := reconcileCreate(7, &RiderProfileRequest{}, testNow)

	if p.UserID != 7 {
		t.Errorf("UserID = %d, want 7", p.UserID)
	}
	if p.MaxTravelDistance != 25 {
		t.Errorf("MaxTravelDistance = %d, want 25", p.MaxTravelDistance)
	}
	if p.SessionDurationMin != 60 || p.SessionDurationMax != 120 {
		t.Errorf("session duration = %d-%d, want 60-120", p.SessionDurationMin, p.SessionDurationMax)
	}
	if p.Age != 25 {
		t.Errorf("Age = %d, want 25", p.Age)
	}
	if !p.BitlessOK || !p.TrainingAidsOK || !p.OwnHelmet {
		t.Error("bitless, training aids and own helmet should default to true")
	}
	if p.SpursOK {
		t.Error("spurs should default to false")
	}
	if p.AvailableDays == nil || len(p.AvailableDays) != 0 {
		t.Errorf("AvailableDays = %v, want empty mapping", p.AvailableDays)
	}
}

func TestReconcileCreateCareOnlyDropsRideActivities(t *testing.T) {
	req := &RiderProfileRequest{
		ActivityMode:          strPtr("care_only"),
		ActivityPreferences:   strsPtr("verzorging", "buitenritten", "wandelen"),
		RidingGoals:           strsPtr("betere balans"),
		DisciplinePreferences: strsPtr("dressuur"),
		MennenExperience:      strPtr("beginner"),
	}
	p := reconcileCreate(1, req, testNow)

	want := []string{"verzorging", "wandelen"}
	if !reflect.DeepEqual([]string(p.ActivityPreferences), want) {
		t.Errorf("ActivityPreferences = %v, want %v", p.ActivityPreferences, want)
	}
	if p.Goals != nil {
		t.Errorf("Goals = %v, want cleared", p.Goals)
	}
	if p.DisciplinePreferences != nil {
		t.Errorf("DisciplinePreferences = %v, want cleared", p.DisciplinePreferences)
	}
	if p.MennenExperience != nil {
		t.Errorf("MennenExperience = %v, want cleared", *p.MennenExperience)
	}
}

func TestReconcileCreateDriveOnlyKeepsMennen(t *testing.T) {
	req := &RiderProfileRequest{
		ActivityMode:        strPtr("drive_only"),
		ActivityPreferences: strsPtr("verzorging", "buitenritten"),
		MennenExperience:    strPtr("gevorderd"),
	}
	p := reconcileCreate(1, req, testNow)

	if len(p.ActivityPreferences) != 0 {
		t.Errorf("ActivityPreferences = %v, want empty", p.ActivityPreferences)
	}
	if p.MennenExperience == nil || *p.MennenExperience != "gevorderd" {
		t.Errorf("MennenExperience = %v, want gevorderd", p.MennenExperience)
	}
}

func TestReconcileCreateDateOfBirth(t *testing.T) {
	p := reconcileCreate(1, &RiderProfileRequest{DateOfBirth: strPtr("15-06-2000")}, testNow)

	if p.DateOfBirth == nil {
		t.Fatal("DateOfBirth not set")
	}
	if p.Age != 23 {
		t.Errorf("Age = %d, want 23", p.Age)
	}
}

func TestReconcileCreateBadDateKeepsDefaultAge(t *testing.T) {
	p := reconcileCreate(1, &RiderProfileRequest{
		DateOfBirth: strPtr("soon"),
		Postcode:    strPtr("1234AB"),
	}, testNow)

	if p.DateOfBirth != nil {
		t.Errorf("DateOfBirth = %v, want unset", p.DateOfBirth)
	}
	if p.Age != 25 {
		t.Errorf("Age = %d, want default 25", p.Age)
	}
	// the rest of the payload still lands
	if p.Postcode != "1234AB" {
		t.Errorf("Postcode = %q, want 1234AB", p.Postcode)
	}
}

func TestReconcileCreateSchedulePrecedence(t *testing.T) {
	req := &RiderProfileRequest{
		AvailableSchedule:   json.RawMessage(`{"monday":["morning"]}`),
		AvailableDays:       strsPtr("friday", "saturday"),
		AvailableTimeBlocks: strsPtr("evening"),
	}
	p := reconcileCreate(1, req, testNow)

	want := domain.Availability{"monday": {"morning"}}
	if !reflect.DeepEqual(p.AvailableDays, want) {
		t.Errorf("AvailableDays = %v, want %v", p.AvailableDays, want)
	}
}

func TestReconcileCreateFlatAvailability(t *testing.T) {
	req := &RiderProfileRequest{
		AvailableDays:       strsPtr("friday", "saturday"),
		AvailableTimeBlocks: strsPtr("evening"),
	}
	p := reconcileCreate(1, req, testNow)

	want := domain.Availability{
		"friday":   {"evening"},
		"saturday": {"evening"},
	}
	if !reflect.DeepEqual(p.AvailableDays, want) {
		t.Errorf("AvailableDays = %v, want %v", p.AvailableDays, want)
	}
}

func TestReconcileCreateMalformedNestedObjectsIgnored(t *testing.T) {
	req := &RiderProfileRequest{
		ComfortLevels:       json.RawMessage(`"not an object"`),
		MaterialPreferences: json.RawMessage(`[1,2,3]`),
		AvailableSchedule:   json.RawMessage(`42`),
	}
	p := reconcileCreate(1, req, testNow)

	if p.ComfortableWithTraffic {
		t.Error("malformed comfort_levels should be ignored")
	}
	if !p.BitlessOK {
		t.Error("malformed material_preferences should keep default")
	}
	if len(p.AvailableDays) != 0 {
		t.Errorf("malformed schedule should be ignored, got %v", p.AvailableDays)
	}
}

func TestReconcileCreateNestedFanOut(t *testing.T) {
	req := &RiderProfileRequest{
		ComfortLevels:       json.RawMessage(`{"traffic":true,"jumping_height":80}`),
		MaterialPreferences: json.RawMessage(`{"spurs":true,"bitless_ok":false}`),
		NoGos:               strsPtr("springen", "wedstrijden"),
	}
	p := reconcileCreate(1, req, testNow)

	if !p.ComfortableWithTraffic {
		t.Error("traffic comfort not applied")
	}
	if p.ComfortableSoloOutside {
		t.Error("absent comfort key should stay false")
	}
	if p.MaxJumpHeight == nil || *p.MaxJumpHeight != 80 {
		t.Errorf("MaxJumpHeight = %v, want 80", p.MaxJumpHeight)
	}
	if !p.SpursOK || p.BitlessOK {
		t.Errorf("material preferences not applied: spurs=%v bitless=%v", p.SpursOK, p.BitlessOK)
	}
	if !p.OwnHelmet {
		t.Error("absent material key should keep default")
	}
	if got := domain.DecodeTextList(p.NoGos); !reflect.DeepEqual(got, []string{"springen", "wedstrijden"}) {
		t.Errorf("NoGos = %v", got)
	}
}

func TestReconcileUpdateAbsentMeansUnchanged(t *testing.T) {
	existing := reconcileCreate(1, &RiderProfileRequest{
		Postcode:            strPtr("1234AB"),
		MaxTravelDistanceKm: intPtr(40),
		ActivityMode:        strPtr("ride_or_care"),
		ActivityPreferences: strsPtr("dressuur", "verzorging"),
		RiderBio:            strPtr("rustige ruiter"),
	}, testNow)

	updated := reconcileUpdate(existing, &RiderProfileRequest{
		City: strPtr("Utrecht"),
	}, testNow)

	if updated.City == nil || *updated.City != "Utrecht" {
		t.Errorf("City = %v, want Utrecht", updated.City)
	}
	if updated.Postcode != "1234AB" {
		t.Errorf("Postcode = %q, want unchanged", updated.Postcode)
	}
	if updated.MaxTravelDistance != 40 {
		t.Errorf("MaxTravelDistance = %d, want unchanged 40", updated.MaxTravelDistance)
	}
	if updated.RiderBio == nil || *updated.RiderBio != "rustige ruiter" {
		t.Errorf("RiderBio = %v, want unchanged", updated.RiderBio)
	}
	if existing.City != nil {
		t.Error("update must not mutate the existing profile")
	}
}

func TestReconcileUpdateBlocksOnlyKeepsStoredDays(t *testing.T) {
	existing := reconcileCreate(1, &RiderProfileRequest{
		AvailableSchedule: json.RawMessage(`{"monday":["morning"],"friday":["morning","evening"]}`),
	}, testNow)

	updated := reconcileUpdate(existing, &RiderProfileRequest{
		AvailableTimeBlocks: strsPtr("afternoon"),
	}, testNow)

	want := domain.Availability{
		"monday": {"afternoon"},
		"friday": {"afternoon"},
	}
	if !reflect.DeepEqual(updated.AvailableDays, want) {
		t.Errorf("AvailableDays = %v, want %v", updated.AvailableDays, want)
	}
}

func TestReconcileUpdateModeChangeRefilters(t *testing.T) {
	existing := reconcileCreate(1, &RiderProfileRequest{
		ActivityMode:        strPtr("ride_or_care"),
		ActivityPreferences: strsPtr("dressuur", "verzorging"),
		RidingGoals:         strsPtr("wedstrijden rijden"),
	}, testNow)

	updated := reconcileUpdate(existing, &RiderProfileRequest{
		ActivityMode: strPtr("care_only"),
	}, testNow)

	want := []string{"verzorging"}
	if !reflect.DeepEqual([]string(updated.ActivityPreferences), want) {
		t.Errorf("ActivityPreferences = %v, want %v", updated.ActivityPreferences, want)
	}
	if updated.Goals != nil {
		t.Errorf("Goals = %v, want cleared after switch to care_only", updated.Goals)
	}
}

func TestReconcileUpdateExplicitEmptyListClears(t *testing.T) {
	existing := reconcileCreate(1, &RiderProfileRequest{
		WillingTasks: strsPtr("poetsen", "voeren"),
	}, testNow)

	updated := reconcileUpdate(existing, &RiderProfileRequest{
		WillingTasks: strsPtr(),
	}, testNow)

	if len(updated.WillingTasks) != 0 {
		t.Errorf("WillingTasks = %v, want cleared", updated.WillingTasks)
	}
}

func TestReconcileInvalidActivityModeIgnored(t *testing.T) {
	existing := reconcileCreate(1, &RiderProfileRequest{
		ActivityMode: strPtr("ride_only"),
	}, testNow)

	updated := reconcileUpdate(existing, &RiderProfileRequest{
		ActivityMode: strPtr("swimming"),
	}, testNow)

	if updated.ActivityMode != domain.ActivityRideOnly {
		t.Errorf("ActivityMode = %s, want unchanged ride_only", updated.ActivityMode)
	}
}
