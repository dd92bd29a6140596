package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/horsesharing/backend/internal/domain"
	"github.com/horsesharing/backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (kinde_id, email, name, phone, is_active, onboarding_completed, profile_type_chosen)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		user.KindeID, user.Email, user.Name, user.Phone,
		user.IsActive, user.OnboardingCompleted, user.ProfileTypeChosen,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByKindeID(ctx context.Context, kindeID string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE kinde_id = $1`
	err := r.db.GetContext(ctx, &user, query, kindeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET email = $1, name = $2, phone = $3, is_active = $4,
		    onboarding_completed = $5, profile_type_chosen = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(
		ctx, query,
		user.Email, user.Name, user.Phone, user.IsActive,
		user.OnboardingCompleted, user.ProfileTypeChosen, user.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) SetOnboarding(ctx context.Context, userID int, completed bool, profileType domain.ProfileType) error {
	query := `
		UPDATE users
		SET onboarding_completed = $1, profile_type_chosen = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, completed, profileType, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
