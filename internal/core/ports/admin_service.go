package ports

import (
	"context"

	"github.com/memberhub/members-api/internal/core/domain"
)

// AdminService exposes the user-management operations behind the admin area.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	PromoteUser(ctx context.Context, id string) error
}
