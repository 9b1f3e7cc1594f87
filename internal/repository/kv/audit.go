package kv

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type auditRepository struct {
	base
}

func NewAuditRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.AuditRepository {
	return &auditRepository{base: newBase(store, guard, m)}
}

func (r *auditRepository) Append(ctx context.Context, entry *model.AuditEntry) error {
	return appendTo(ctx, r.base, auditKey, entry)
}

func (r *auditRepository) List(ctx context.Context) ([]*model.AuditEntry, error) {
	return readCollection[*model.AuditEntry](ctx, r.base, auditKey)
}
