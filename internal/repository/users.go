package repository

import (
	"context"
	"database/sql"

	"stagedoor/internal/database"
	"stagedoor/internal/models"
)

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, password_hash, created_at
		FROM users
		WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return user, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1 WHERE email = $2`,
		passwordHash, email)
	return err
}

// EnsureOperator seeds the operator account on first start. An existing
// account is left untouched so password resets survive restarts.
func (r *UserRepository) EnsureOperator(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) ON CONFLICT (email) DO NOTHING`,
		email, passwordHash)
	return err
}
