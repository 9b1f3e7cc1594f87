package exam

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

const dateLayout = "02/01/2006"

type Service struct {
	repo     repository.ExamRepository
	validate *validator.Validator
	ids      *idgen.Generator
	auditor  *audit.Service
	logger   *logger.Logger
}

func NewService(repo repository.ExamRepository, validate *validator.Validator,
	ids *idgen.Generator, auditor *audit.Service, logger *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		ids:      ids,
		auditor:  auditor,
		logger:   logger,
	}
}

// Register appends a new exam entry. A missing result defaults to "Pending".
func (s *Service) Register(ctx context.Context, req *model.RegisterExamRequest) (*model.ExamEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	result := req.Result
	if result == "" {
		result = model.ExamResultPending
	}

	entry := &model.ExamEntry{
		ID:        s.ids.Next(),
		CreatedAt: time.Now().Format(dateLayout),
		Type:      req.Type,
		Result:    result,
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, "register", "exam", entry.ID, "")
	s.logger.Info("exam registered", "id", entry.ID, "type", entry.Type)

	return entry, nil
}

// List returns all exam entries in insertion order.
func (s *Service) List(ctx context.Context) ([]*model.ExamEntry, error) {
	return s.repo.List(ctx)
}
