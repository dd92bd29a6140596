package rider

import (
	"encoding/json"
	"testing"
)

// A brand-new profile built from an empty payload must render every filled
// field with its documented default: zero jump height, empty objects and
// arrays rather than null.
func TestViewFillsDefaultsForEmptyProfile(t *testing.T) {
	p := reconcileCreate(1, &RiderProfileRequest{}, testNow)
	view := newRiderProfileView(p, testUser())

	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal view: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}

	comfort, ok := out["comfort_levels"].(map[string]any)
	if !ok {
		t.Fatalf("comfort_levels = %v, want object", out["comfort_levels"])
	}
	if got := comfort["jumping_height"]; got != float64(0) {
		t.Errorf("jumping_height = %v, want 0", got)
	}

	for _, key := range []string{"lease_preferences", "desired_horse", "available_schedule"} {
		obj, ok := out[key].(map[string]any)
		if !ok {
			t.Errorf("%s = %v, want empty object", key, out[key])
			continue
		}
		if len(obj) != 0 {
			t.Errorf("%s = %v, want empty", key, obj)
		}
	}

	for _, key := range []string{
		"photos", "videos", "transport_options", "available_days",
		"available_time_blocks", "certifications", "activity_preferences",
		"riding_goals", "discipline_preferences", "health_restrictions", "no_gos",
	} {
		if _, ok := out[key].([]any); !ok {
			t.Errorf("%s = %v, want array", key, out[key])
		}
	}
}

func TestViewReportsStoredJumpHeight(t *testing.T) {
	req := &RiderProfileRequest{
		ComfortLevels: json.RawMessage(`{"jumping_height": 80}`),
	}
	view := newRiderProfileView(reconcileCreate(1, req, testNow), testUser())
	if view.ComfortLevels.JumpingHeight != 80 {
		t.Fatalf("JumpingHeight = %d, want 80", view.ComfortLevels.JumpingHeight)
	}
}
