package domain

import (
	"time"

	"github.com/lib/pq"
)

type MatchStatus string

const (
	MatchStatusPending MatchStatus = "pending"
	MatchStatusActive  MatchStatus = "active"
	MatchStatusPaused  MatchStatus = "paused"
	MatchStatusEnded   MatchStatus = "ended"
)

// Match pairs a rider profile with a horse profile. The compatibility
// score and hard-filter flag are persisted for a future matching pass;
// nothing computes them yet.
type Match struct {
	ID             int `json:"id" db:"id"`
	RiderProfileID int `json:"rider_profile_id" db:"rider_profile_id"`
	HorseProfileID int `json:"horse_profile_id" db:"horse_profile_id"`

	RiderLiked    bool `json:"rider_liked" db:"rider_liked"`
	OwnerLiked    bool `json:"owner_liked" db:"owner_liked"`
	IsMutualMatch bool `json:"is_mutual_match" db:"is_mutual_match"`

	CompatibilityScore *float64 `json:"compatibility_score" db:"compatibility_score"`
	HardFiltersPassed  bool     `json:"hard_filters_passed" db:"hard_filters_passed"`

	MatchReasons    pq.StringArray `json:"match_reasons" db:"match_reasons"`
	PotentialIssues pq.StringArray `json:"potential_issues" db:"potential_issues"`

	Status MatchStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Mutual reports whether both sides have liked.
func (m *Match) Mutual() bool {
	return m.RiderLiked && m.OwnerLiked
}
