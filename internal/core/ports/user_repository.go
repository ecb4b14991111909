package ports

import (
	"context"

	"github.com/memberhub/members-api/internal/core/domain"
)

// UserRepository defines the credential store contract. Username uniqueness
// is enforced by the store itself (unique index), not by callers: a race
// between two concurrent signups is resolved by the second insert failing
// with domain.ErrUserExists.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string) error
	UpdateRole(ctx context.Context, id string, admin bool) error
	List(ctx context.Context) ([]domain.User, error)
}
