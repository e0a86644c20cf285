package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"

	"github.com/inbucks/inbucks/internal/api/models"
)

var tracer = otel.Tracer("repository")

// ErrDuplicateEmail is returned when a user with the same email already
// exists.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines the interface for user data operations. Users are
// never updated or deleted in this scope.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new SQLite-based UserRepository.
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

// Create inserts a new user row. The caller supplies an already-encoded
// password hash.
func (r *sqliteUserRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.Create")
	defer span.End()

	createdAt := time.Now().UTC()
	query := `INSERT INTO users (email, password_hash, email_verified, created_at) VALUES (?, ?, 0, ?)`
	res, err := r.db.ExecContext(ctx, query, email, passwordHash, createdAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new user id: %w", err)
	}

	return &models.User{
		ID:           id,
		Email:        email,
		PasswordHash: &passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

// GetByEmail retrieves a user by email. A missing user is (nil, nil), not an
// error.
func (r *sqliteUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByEmail")
	defer span.End()

	var user models.User
	query := `SELECT id, email, password_hash, stripe_customer_id, email_verified, created_at FROM users WHERE email = ?`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by id. A missing user is (nil, nil), not an error.
func (r *sqliteUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "UserRepository.GetByID")
	defer span.End()

	var user models.User
	query := `SELECT id, email, password_hash, stripe_customer_id, email_verified, created_at FROM users WHERE id = ?`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
