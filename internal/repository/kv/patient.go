package kv

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type patientRepository struct {
	base
}

func NewPatientRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{base: newBase(store, guard, m)}
}

func (r *patientRepository) Append(ctx context.Context, profile *model.PatientProfile) error {
	if err := appendTo(ctx, r.base, patientsKey, profile); err != nil {
		return err
	}
	r.countMutation("patients", "append")
	return nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.PatientProfile, error) {
	return readCollection[*model.PatientProfile](ctx, r.base, patientsKey)
}
