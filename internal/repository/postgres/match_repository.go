package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

var matchColumns = []string{
	"rider_profile_id", "horse_profile_id",
	"rider_liked", "owner_liked", "is_mutual_match",
	"compatibility_score", "hard_filters_passed",
	"match_reasons", "potential_issues", "status",
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	if match.Status == "" {
		match.Status = domain.MatchStatusPending
	}
	match.IsMutualMatch = match.Mutual()
	query := insertQuery("matches", matchColumns) + " RETURNING id, created_at, updated_at"
	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, match)
	if err != nil {
		return err
	}
	defer rows.Close()
	if !rows.Next() {
		return sql.ErrNoRows
	}
	return rows.Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByPair(ctx context.Context, riderProfileID, horseProfileID int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE rider_profile_id = $1 AND horse_profile_id = $2`
	err := r.db.GetContext(ctx, &match, query, riderProfileID, horseProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) ListByRiderProfileID(ctx context.Context, riderProfileID int, limit, offset int) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT * FROM matches
		WHERE rider_profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &matches, query, riderProfileID, limit, offset); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) ListByHorseProfileID(ctx context.Context, horseProfileID int, limit, offset int) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT * FROM matches
		WHERE horse_profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &matches, query, horseProfileID, limit, offset); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, status domain.MatchStatus) error {
	query := `
		UPDATE matches
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
