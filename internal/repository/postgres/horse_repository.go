package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type horseRepository struct {
	db *sqlx.DB
}

func NewHorseRepository(db *sqlx.DB) repository.HorseRepository {
	return &horseRepository{db: db}
}

var horseColumns = []string{
	"owner_profile_id",
	"title", "description", "ad_type", "ad_types", "ad_reason",
	"start_date", "end_date", "no_end_date",
	"photos", "videos", "video",
	"name", "type", "height", "age", "gender", "breed", "coat_colors",
	"health_restrictions", "medication", "farrier_schedule", "physio_schedule",
	"energy_level", "temperament", "triggers", "enjoys", "dislikes",
	"disciplines", "level", "max_jump_height",
	"comfort_flags", "activity_mode", "activity_preferences", "mennen_experience",
	"suitable_for_beginners", "suitable_for_advanced", "suitable_for_experienced_only",
	"max_rider_weight", "min_rider_height", "max_rider_height",
	"bit_bitless_policy", "spurs_allowed", "training_aids_allowed", "bareback_allowed",
	"required_tasks", "optional_tasks", "required_skills", "desired_rider_personality",
	"task_frequency", "rules",
	"indoor_arena", "outdoor_arena", "lighting", "longe_circle", "trail_access",
	"trailer_available", "toilet_available", "locker_available", "horse_walker",
	"stable_postcode", "stable_street", "stable_house_number",
	"stable_house_number_addition", "stable_city", "stable_country_code",
	"stable_lat", "stable_lon",
	"available_days", "min_days_per_week", "session_duration_min", "session_duration_max",
	"cost_model", "cost_amount",
	"is_available", "no_gos",
}

func (r *horseRepository) Create(ctx context.Context, horse *domain.HorseProfile) error {
	query := insertQuery("horse_profiles", horseColumns) + " RETURNING id, created_at, updated_at"
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, horse)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		return sql.ErrNoRows
	}
	return rows.Scan(&horse.ID, &horse.CreatedAt, &horse.UpdatedAt)
}

func (r *horseRepository) GetByID(ctx context.Context, id int) (*domain.HorseProfile, error) {
	var horse domain.HorseProfile
	query := `SELECT * FROM horse_profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &horse, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHorseNotFound
		}
		return nil, err
	}
	return &horse, nil
}

func (r *horseRepository) ListByOwnerProfileID(ctx context.Context, ownerProfileID int) ([]*domain.HorseProfile, error) {
	var horses []*domain.HorseProfile
	query := `SELECT * FROM horse_profiles WHERE owner_profile_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &horses, query, ownerProfileID); err != nil {
		return nil, err
	}
	return horses, nil
}

func (r *horseRepository) Update(ctx context.Context, horse *domain.HorseProfile) error {
	query := updateQuery("horse_profiles", append([]string{"id"}, horseColumns...), "id") + " RETURNING updated_at"
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, horse)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		return domain.ErrHorseNotFound
	}
	return rows.Scan(&horse.UpdatedAt)
}

func (r *horseRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM horse_profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHorseNotFound
	}
	return nil
}
