package owner

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/horsesharing/backend/internal/domain"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func boolPtr(b bool) *bool          { return &b }
func strsPtr(s ...string) *[]string { return &s }

func TestReconcileCreateDefaults(t *testing.T) {
	p := reconcileCreate(3, &OwnerProfileRequest{}, testNow)

	if p.UserID != 3 {
		t.Errorf("UserID = %d, want 3", p.UserID)
	}
	if p.VisibleRadius != 10 {
		t.Errorf("VisibleRadius = %d, want default 10", p.VisibleRadius)
	}
	if p.AvailableDays == nil || len(p.AvailableDays) != 0 {
		t.Errorf("AvailableDays = %v, want empty mapping", p.AvailableDays)
	}
}

func TestReconcileCreateAddress(t *testing.T) {
	lat, lon := 52.0907, 5.1214
	req := &OwnerProfileRequest{
		Postcode:          strPtr("3511AB"),
		Street:            strPtr("Domplein"),
		HouseNumber:       strPtr("29"),
		City:              strPtr("Utrecht"),
		Lat:               &lat,
		Lon:               &lon,
		GeocodeConfidence: float64Ptr(0.93),
		NeedsReview:       boolPtr(false),
	}
	p := reconcileCreate(1, req, testNow)

	if p.Postcode != "3511AB" || *p.Street != "Domplein" || *p.City != "Utrecht" {
		t.Errorf("address not applied: %+v", p)
	}
	if *p.Lat != lat || *p.Lon != lon {
		t.Errorf("coordinates not applied")
	}
}

func TestReconcileUpdateAbsentMeansUnchanged(t *testing.T) {
	existing := reconcileCreate(1, &OwnerProfileRequest{
		Postcode:      strPtr("3511AB"),
		VisibleRadius: intPtr(25),
	}, testNow)

	updated := reconcileUpdate(existing, &OwnerProfileRequest{
		City: strPtr("Utrecht"),
	}, testNow)

	if updated.Postcode != "3511AB" {
		t.Errorf("Postcode = %q, want unchanged", updated.Postcode)
	}
	if updated.VisibleRadius != 25 {
		t.Errorf("VisibleRadius = %d, want unchanged 25", updated.VisibleRadius)
	}
	if updated.City == nil || *updated.City != "Utrecht" {
		t.Errorf("City = %v, want Utrecht", updated.City)
	}
	if existing.City != nil {
		t.Error("update must not mutate the existing profile")
	}
}

func TestReconcileParentConsentStampsTimestamp(t *testing.T) {
	p := reconcileCreate(1, &OwnerProfileRequest{
		ParentConsent: boolPtr(true),
		ParentName:    strPtr("Els de Boer"),
	}, testNow)

	if p.ParentConsentTimestamp == nil || !p.ParentConsentTimestamp.Equal(testNow) {
		t.Errorf("ParentConsentTimestamp = %v, want %v", p.ParentConsentTimestamp, testNow)
	}

	// re-sending consent that is already recorded keeps the original stamp
	later := testNow.Add(48 * time.Hour)
	updated := reconcileUpdate(p, &OwnerProfileRequest{ParentConsent: boolPtr(true)}, later)
	if !updated.ParentConsentTimestamp.Equal(testNow) {
		t.Errorf("timestamp moved to %v on repeated consent", updated.ParentConsentTimestamp)
	}
}

func TestReconcileSchedulePrecedence(t *testing.T) {
	req := &OwnerProfileRequest{
		AvailableSchedule:   json.RawMessage(`{"sunday":["afternoon"]}`),
		AvailableDays:       strsPtr("monday"),
		AvailableTimeBlocks: strsPtr("morning"),
	}
	p := reconcileCreate(1, req, testNow)

	want := domain.Availability{"sunday": {"afternoon"}}
	if !reflect.DeepEqual(p.AvailableDays, want) {
		t.Errorf("AvailableDays = %v, want %v", p.AvailableDays, want)
	}
}

func TestReconcileUpdateBlocksOnlyKeepsStoredDays(t *testing.T) {
	existing := reconcileCreate(1, &OwnerProfileRequest{
		AvailableSchedule: json.RawMessage(`{"sunday":["afternoon"]}`),
	}, testNow)

	updated := reconcileUpdate(existing, &OwnerProfileRequest{
		AvailableTimeBlocks: strsPtr("morning"),
	}, testNow)

	want := domain.Availability{"sunday": {"morning"}}
	if !reflect.DeepEqual(updated.AvailableDays, want) {
		t.Errorf("AvailableDays = %v, want %v", updated.AvailableDays, want)
	}
}

func float64Ptr(f float64) *float64 { return &f }
