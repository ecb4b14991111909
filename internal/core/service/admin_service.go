package service

import (
	"context"

	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

// AdminService implements the user-management operations.
type AdminService struct {
	repo ports.UserRepository
}

func NewAdminService(repo ports.UserRepository) *AdminService {
	return &AdminService{repo: repo}
}

// ListUsers returns every account for the management view. Password hashes
// are stripped at the repository projection, not here.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// PromoteUser grants admin to the given account. Unknown IDs surface as
// domain.ErrUserNotFound. Users already holding admin keep it; the update
// is idempotent.
func (s *AdminService) PromoteUser(ctx context.Context, id string) error {
	return s.repo.UpdateRole(ctx, id, true)
}
