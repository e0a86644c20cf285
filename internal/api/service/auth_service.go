package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inbucks/inbucks/internal/api/models"
	"github.com/inbucks/inbucks/internal/api/repository"
	"github.com/inbucks/inbucks/internal/password"
)

// AuthService defines the interface for registration and credential checks.
// Session issuance lives with the HTTP layer; this service only deals in
// users and passwords.
type AuthService interface {
	Register(ctx context.Context, email, plaintext string) (*models.User, error)
	Login(ctx context.Context, email, plaintext string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register hashes the password and persists a new user. Returns
// repository.ErrDuplicateEmail when the email is taken.
func (s *authService) Register(ctx context.Context, email, plaintext string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, repository.ErrDuplicateEmail
	}

	encoded, err := password.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, email, encoded)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials and returns the user. Unknown email, absent
// password hash and mismatched password all collapse into
// ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, plaintext string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || user.PasswordHash == nil || !password.Verify(plaintext, *user.PasswordHash) {
		slog.InfoContext(ctx, "login failed: invalid credentials")
		return nil, ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "login successful", "user_id", user.ID)
	return user, nil
}
