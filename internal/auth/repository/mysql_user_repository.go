package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/gamestats/internal/auth/domain"
	"github.com/allisson/gamestats/internal/database"
	apperrors "github.com/allisson/gamestats/internal/errors"
)

// MySQLUserRepository reads and provisions users in MySQL, storing ids as BINARY(16).
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user. Returns ErrUserAlreadyExists when the username is taken.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.Conn(ctx, r.db)

	query := `INSERT INTO users (id, username, password_hash, role, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (r *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := database.Conn(ctx, r.db)

	query := `SELECT id, username, password_hash, role, created_at
			  FROM users WHERE username = ?`

	var (
		user domain.User
		id   []byte
		role string
	)
	err := querier.QueryRowContext(ctx, query, username).Scan(
		&id, &user.Username, &user.PasswordHash, &role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}

	if user.ID, err = uuid.FromBytes(id); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}
	if user.Role, err = domain.ParseRole(role); err != nil {
		return nil, apperrors.Wrap(err, "failed to decode user role")
	}

	return &user, nil
}
