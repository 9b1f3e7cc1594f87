package appointment

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/internal/service/audit"
	"github.com/medponto/clinica-core/pkg/idgen"
	"github.com/medponto/clinica-core/pkg/logger"
	"github.com/medponto/clinica-core/pkg/validator"
)

type Service struct {
	repo     repository.AppointmentRepository
	validate *validator.Validator
	ids      *idgen.Generator
	auditor  *audit.Service
	logger   *logger.Logger
}

func NewService(repo repository.AppointmentRepository, validate *validator.Validator,
	ids *idgen.Generator, auditor *audit.Service, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		ids:      ids,
		auditor:  auditor,
		logger:   logger,
	}
}

// Schedule appends a new appointment with status "scheduled". Specialty is
// the one optional field.
func (s *Service) Schedule(ctx context.Context, req *model.ScheduleRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ID:        s.ids.Next(),
		Date:      req.Date,
		Time:      req.Time,
		Doctor:    req.Doctor,
		Specialty: req.Specialty,
		Status:    model.AppointmentStatusScheduled,
	}

	if err := s.repo.Append(ctx, appointment); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, "schedule", "appointment", appointment.ID, "")
	s.logger.Info("appointment scheduled", "id", appointment.ID, "doctor", appointment.Doctor)

	return appointment, nil
}

// List returns all appointments in insertion order.
func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	return s.repo.List(ctx)
}

// Cancel removes the appointment with the given id.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.auditor.Record(ctx, "cancel", "appointment", id, "")
	s.logger.Info("appointment cancelled", "id", id)

	return nil
}
