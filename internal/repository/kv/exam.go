package kv

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type examRepository struct {
	base
}

func NewExamRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.ExamRepository {
	return &examRepository{base: newBase(store, guard, m)}
}

func (r *examRepository) Append(ctx context.Context, entry *model.ExamEntry) error {
	if err := appendTo(ctx, r.base, examsKey, entry); err != nil {
		return err
	}
	r.countMutation("exams", "append")
	return nil
}

func (r *examRepository) List(ctx context.Context) ([]*model.ExamEntry, error) {
	return readCollection[*model.ExamEntry](ctx, r.base, examsKey)
}
