package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/content-sharing-api/internal/apperrors"
	"github.com/content-sharing-api/internal/database"
	"github.com/content-sharing-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	q database.Querier
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{q: db}
}

func (r *userRepo) WithTx(tx *sql.Tx) UserRepository {
	return &userRepo{q: tx}
}

// Create inserts a new user. A duplicate username or email is rejected by
// the unique constraints and surfaced as an AlreadyExistsError.
func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, username, email, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.q.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Name,
		user.CreatedAt, user.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return apperrors.AlreadyExists("username or email already taken")
	}
	return err
}

// GetByID retrieves a user by ID. Returns nil without error when absent.
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT id, username, email, name, created_at, updated_at FROM users WHERE id = $1`

	var user models.User
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Name,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &user, nil
}

// Exists checks if a user with the given ID exists
func (r *userRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
