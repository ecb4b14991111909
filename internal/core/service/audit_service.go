package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/memberhub/members-api/internal/core/domain"
	"github.com/memberhub/members-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists authentication
// events to the audit repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single auth event. Events without a timestamp are
// stamped at processing time.
func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if err := s.repo.InsertEvent(ctx, &event); err != nil {
		return fmt.Errorf("audit %s/%s: %w", event.Action, event.Username, err)
	}

	s.log.Debug().
		Str("username", event.Username).
		Str("action", string(event.Action)).
		Str("outcome", event.Outcome).
		Msg("auth event recorded")
	return nil
}
