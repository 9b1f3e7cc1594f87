package kv

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/kvstore"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/metrics"
)

type appointmentRepository struct {
	base
}

func NewAppointmentRepository(store kvstore.Store, guard *serial.Guard, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{base: newBase(store, guard, m)}
}

func (r *appointmentRepository) Append(ctx context.Context, appointment *model.Appointment) error {
	if err := appendTo(ctx, r.base, appointmentsKey, appointment); err != nil {
		return err
	}
	r.countMutation("appointments", "append")
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	return readCollection[*model.Appointment](ctx, r.base, appointmentsKey)
}

// Remove filters the appointment out of the collection and stores the rest.
// The collection is untouched when the id is unknown.
func (r *appointmentRepository) Remove(ctx context.Context, id string) error {
	err := r.guard.Do(appointmentsKey, func() error {
		items, err := readCollection[*model.Appointment](ctx, r.base, appointmentsKey)
		if err != nil {
			return err
		}

		remaining := make([]*model.Appointment, 0, len(items))
		for _, item := range items {
			if item.ID != id {
				remaining = append(remaining, item)
			}
		}
		if len(remaining) == len(items) {
			return apperrors.NewNotFound("appointment", nil)
		}

		return writeCollection(ctx, r.base, appointmentsKey, remaining)
	})
	if err != nil {
		return err
	}

	r.countMutation("appointments", "remove")
	return nil
}
