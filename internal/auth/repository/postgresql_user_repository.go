// Package repository provides persistence for users (SQL credential store) and
// sessions (Redis or in-process).
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/gamestats/internal/auth/domain"
	"github.com/allisson/gamestats/internal/database"
	apperrors "github.com/allisson/gamestats/internal/errors"
)

// PostgreSQLUserRepository reads and provisions users in PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user. Returns ErrUserAlreadyExists when the username is taken.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.Conn(ctx, r.db)

	query := `INSERT INTO users (id, username, password_hash, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role.String(),
		user.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByUsername retrieves a user by username. Returns ErrUserNotFound when absent.
func (r *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.Conn(ctx, r.db)

	query := `SELECT id, username, password_hash, role, created_at
			  FROM users WHERE username = $1`

	var (
		user domain.User
		role string
	)
	err := querier.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	if user.Role, err = domain.ParseRole(role); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode user role")
	}

	return &user, nil
}
