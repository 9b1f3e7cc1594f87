package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/pkg/logger"
)

// Service appends one audit entry per mutation to the audit collection.
type Service struct {
	repo   repository.AuditRepository
	logger *logger.Logger
}

func NewService(repo repository.AuditRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record writes an audit entry. A failed audit write is logged and dropped;
// it never fails the business operation that triggered it.
func (s *Service) Record(ctx context.Context, action, entityType, entityID, actor string) {
	entry := &model.AuditEntry{
		ID:         uuid.New(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Actor:      actor,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		s.logger.Error(err, "failed to record audit entry",
			"action", action, "entity_type", entityType)
	}
}

func (s *Service) List(ctx context.Context) ([]*model.AuditEntry, error) {
	return s.repo.List(ctx)
}
