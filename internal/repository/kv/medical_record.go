package kv

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type medicalRecordRepository struct {
	base
}

func NewMedicalRecordRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.MedicalRecordRepository {
	return &medicalRecordRepository{base: newBase(store, guard, m)}
}

func (r *medicalRecordRepository) Append(ctx context.Context, entry *model.MedicalRecordEntry) error {
	if err := appendTo(ctx, r.base, recordsKey, entry); err != nil {
		return err
	}
	r.countMutation("medical_records", "append")
	return nil
}

func (r *medicalRecordRepository) List(ctx context.Context) ([]*model.MedicalRecordEntry, error) {
	return readCollection[*model.MedicalRecordEntry](ctx, r.base, recordsKey)
}
