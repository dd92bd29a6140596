package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type ownerRepository struct {
	db *sqlx.DB
}

func NewOwnerRepository(db *sqlx.DB) repository.OwnerRepository {
	return &ownerRepository{db: db}
}

var ownerColumns = []string{
	"user_id", "photo_url",
	"country_code", "postcode", "street", "house_number", "house_number_addition", "city",
	"lat", "lon", "geocode_confidence", "needs_review",
	"visible_radius",
	"available_days", "start_date", "trial_period", "duration",
	"contribution_required", "deposit_required",
	"instruction_available", "instruction_required", "supervision_required",
	"min_age_requirement", "under_18_allowed", "id_required", "contract_required",
	"insurance_required", "insurance_requirements",
	"helmet_required", "boots_required", "stable_rules",
	"date_of_birth", "parent_consent", "parent_name", "parent_email", "parent_consent_timestamp",
}

func (r *ownerRepository) Create(ctx context.Context, profile *domain.OwnerProfile) error {
	query := insertQuery("owner_profiles", ownerColumns) + " RETURNING id, created_at, updated_at"
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

func (r *ownerRepository) GetByUserID(ctx context.Context, userID int) (*domain.OwnerProfile, error) {
	var profile domain.OwnerProfile
	query := `SELECT * FROM owner_profiles WHERE user_id = $1`
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ownerRepository) Update(ctx context.Context, profile *domain.OwnerProfile) error {
	query := updateQuery("owner_profiles", ownerColumns, "user_id") + " RETURNING updated_at"
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

func (r *ownerRepository) Delete(ctx context.Context, userID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM owner_profiles WHERE user_id = $1`, userID)
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
