package ports

import (
	"context"

	"github.com/memberhub/members-api/internal/core/domain"
)

// AuditRepository persists authentication events.
type AuditRepository interface {
	InsertEvent(ctx context.Context, event *domain.AuthEvent) error
}

// AuditService processes a single queued authentication event.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRecorder is the fire-and-forget side consumed by handlers and
// services. Record must never block the request path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
