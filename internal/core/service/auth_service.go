package service

import (
	"context"
	"fmt"
	"time"

	"github.com/memberhub/members-api/internal/auth"
	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

// AuthService implements signup and credential verification.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
}

// NewAuthService returns an AuthService backed by the given store and hasher.
func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

// Signup hashes the password and creates a standard (non-admin) account.
// Duplicate usernames surface as domain.ErrUserExists from the store's
// unique index, which is the only race-safe uniqueness guarantee.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Admin:        false,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Verify checks the credential pair against the store. Both failure modes
// return a *domain.VerificationError that unwraps to ErrInvalidCredentials,
// so callers cannot accidentally leak which one occurred. The unknown-
// username path skips the hash comparison and is therefore measurably
// faster; see DESIGN.md for the timing trade-off.
func (s *AuthService) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, &domain.VerificationError{Reason: domain.ReasonUnknownUsername}
		}
		return nil, fmt.Errorf("verify %q: %w", username, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, &domain.VerificationError{Reason: domain.ReasonWrongPassword}
	}

	return user, nil
}

// RecordLogin stamps the user's last-login time. Informational only; no
// access decision reads it.
func (s *AuthService) RecordLogin(ctx context.Context, userID string) error {
	return s.repo.UpdateLastLogin(ctx, userID)
}
