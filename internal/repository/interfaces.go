package repository

import (
	"context"

	"github.com/medponto/clinica-core/internal/model"
)

// All repository interfaces in one file
type (
	// AccountRepository handles credential records, one per username key.
	AccountRepository interface {
		Create(ctx context.Context, account *model.Account) error
		Get(ctx context.Context, username string) (*model.Account, error)
	}

	// SessionRepository holds the single logged-in account marker.
	SessionRepository interface {
		Set(ctx context.Context, account *model.Account) error
		Get(ctx context.Context) (*model.Account, error)
		Clear(ctx context.Context) error
	}

	PatientRepository interface {
		Append(ctx context.Context, profile *model.PatientProfile) error
		List(ctx context.Context) ([]*model.PatientProfile, error)
	}

	AppointmentRepository interface {
		Append(ctx context.Context, appointment *model.Appointment) error
		List(ctx context.Context) ([]*model.Appointment, error)
		Remove(ctx context.Context, id string) error
	}

	MedicalRecordRepository interface {
		Append(ctx context.Context, entry *model.MedicalRecordEntry) error
		List(ctx context.Context) ([]*model.MedicalRecordEntry, error)
	}

	ExamRepository interface {
		Append(ctx context.Context, entry *model.ExamEntry) error
		List(ctx context.Context) ([]*model.ExamEntry, error)
	}

	AuditRepository interface {
		Append(ctx context.Context, entry *model.AuditEntry) error
		List(ctx context.Context) ([]*model.AuditEntry, error)
	}
)
