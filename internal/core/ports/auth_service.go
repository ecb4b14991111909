package ports

import (
	"context"

	"github.com/memberhub/members-api/internal/core/domain"
)

// AuthService verifies credentials and manages accounts.
type AuthService interface {
	// Signup creates a new standard account. The plaintext password is
	// hashed before it reaches the repository.
	Signup(ctx context.Context, username, password string) (*domain.User, error)

	// Verify checks a username/password pair. On failure it returns a
	// *domain.VerificationError wrapping domain.ErrInvalidCredentials;
	// the returned user never includes consumable credentials.
	Verify(ctx context.Context, username, password string) (*domain.User, error)

	// RecordLogin applies the post-verification side effects of a
	// successful login (last-login timestamp).
	RecordLogin(ctx context.Context, userID string) error
}
