package triage

import (
	"context"
	"strings"

	"github.com/medponto/clinica-core/internal/model"
	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/logger"
)

// Recommended specialties
const (
	SpecialtyCardiology       = "Cardiology"
	SpecialtyPulmonology      = "Pulmonology"
	SpecialtyGastroenterology = "Gastroenterology"
	SpecialtyGeneralPractice  = "General Practice"
)

// Urgency tiers
const (
	UrgencyImmediate = "Immediate Care"
	UrgencyWithin24h = "Consultation within 24h"
	UrgencyRoutine   = "Routine"
)

// Service classifies free-text symptom descriptions. It holds no state and
// persists nothing.
type Service struct {
	logger *logger.Logger
}

func NewService(logger *logger.Logger) *Service {
	return &Service{logger: logger}
}

// Classify maps the symptom text to a specialty and urgency tier using an
// ordered keyword chain. The order matters: chest pain together with fever
// must still triage to cardiology, so the first matching rule wins and the
// rest are not evaluated.
func (s *Service) Classify(ctx context.Context, req *model.TriageRequest) (*model.TriageResult, error) {
	if req.Symptoms == "" {
		return nil, apperrors.NewValidation("symptoms", "is required")
	}

	text := strings.ToLower(req.Symptoms)

	specialty := SpecialtyGeneralPractice
	urgency := UrgencyRoutine

	if strings.Contains(text, "chest pain") || strings.Contains(text, "shortness of breath") {
		specialty = SpecialtyCardiology
		urgency = UrgencyImmediate
	} else if strings.Contains(text, "fever") && strings.Contains(text, "cough") {
		specialty = SpecialtyPulmonology
		urgency = UrgencyWithin24h
	} else if strings.Contains(text, "abdominal pain") {
		specialty = SpecialtyGastroenterology
		urgency = UrgencyWithin24h
	}

	s.logger.Debug("symptoms classified", "specialty", specialty, "urgency", urgency)

	return &model.TriageResult{
		Specialty:        specialty,
		UrgencyTier:      urgency,
		AnalyzedSymptoms: req.Symptoms,
	}, nil
}
