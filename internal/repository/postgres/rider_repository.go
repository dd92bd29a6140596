package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type riderRepository struct {
	db *sqlx.DB
}

func NewRiderRepository(db *sqlx.DB) repository.RiderRepository {
	return &riderRepository{db: db}
}

// riderColumns is every insertable column, used for named insert/update so
// the wide profile row stays maintainable.
var riderColumns = []string{
	"user_id", "photos", "videos", "video_intro",
	"postcode", "house_number", "city", "max_travel_distance", "transport_options",
	"available_days", "session_duration_min", "session_duration_max", "start_date",
	"duration_preference", "min_days_per_week",
	"budget_min", "budget_max",
	"years_experience", "fnrs_level", "knhs_level", "certifications",
	"lesson_history", "references",
	"comfortable_with_traffic", "comfortable_solo_outside",
	"comfortable_with_nervous_horses", "comfortable_with_young_horses",
	"comfortable_with_stallions", "comfortable_with_trail_rides", "max_jump_height",
	"activity_mode", "activity_preferences", "mennen_experience",
	"goals", "personality_style", "discipline_preferences", "riding_styles", "general_skills",
	"willing_tasks", "task_frequency",
	"bitless_ok", "spurs_ok", "training_aids_ok", "own_helmet",
	"health_limitations", "fears_anxieties", "no_gos",
	"rider_bio", "rider_height_cm", "rider_weight_kg",
	"date_of_birth", "age", "parent_consent", "parent_contact",
	"insurance_coverage", "insurance_details",
	"lease_preferences", "desired_horse",
}

func (r *riderRepository) Create(ctx context.Context, profile *domain.RiderProfile) error {
	query := insertQuery("rider_profiles", riderColumns) + " RETURNING id, created_at, updated_at"
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, profile)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		return sql.ErrNoRows
	}
	return rows.Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *riderRepository) GetByUserID(ctx context.Context, userID int) (*domain.RiderProfile, error) {
	var profile domain.RiderProfile
	query := `SELECT * FROM rider_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *riderRepository) Update(ctx context.Context, profile *domain.RiderProfile) error {
	query := updateQuery("rider_profiles", riderColumns, "user_id") + " RETURNING updated_at"
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, profile)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		return domain.ErrProfileNotFound
	}
	return rows.Scan(&profile.UpdatedAt)
}

func (r *riderRepository) Delete(ctx context.Context, userID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rider_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
