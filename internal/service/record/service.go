package record

import (
	"context"
	"time"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository"
	"github.com/medponto/clinica-core/internal/service/audit"
	"github.com/medponto/clinica-core/pkg/idgen"
	"github.com/medponto/clinica-core/pkg/logger"
	"github.com/medponto/clinica-core/pkg/validator"
)

// creation dates keep the DD/MM/YYYY form earlier releases stored
const dateLayout = "02/01/2006"

type Service struct {
	repo     repository.MedicalRecordRepository
	validate *validator.Validator
	ids      *idgen.Generator
	auditor  *audit.Service
	logger   *logger.Logger
}

func NewService(repo repository.MedicalRecordRepository, validate *validator.Validator,
	ids *idgen.Generator, auditor *audit.Service, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		ids:      ids,
		auditor:  auditor,
		logger:   logger,
	}
}

// AddEntry appends a clinical note. Observations and diagnosis are required;
// prescription is optional. Entries are immutable once written.
func (s *Service) AddEntry(ctx context.Context, req *model.AddEntryRequest) (*model.MedicalRecordEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	entry := &model.MedicalRecordEntry{
		ID:           s.ids.Next(),
		CreatedAt:    time.Now().Format(dateLayout),
		Observations: req.Observations,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, "add_entry", "medical_record", entry.ID, "")
	s.logger.Info("medical record entry added", "id", entry.ID)

	return entry, nil
}

// List returns all entries in insertion order, newest last.
func (s *Service) List(ctx context.Context) ([]*model.MedicalRecordEntry, error) {
	return s.repo.List(ctx)
}
