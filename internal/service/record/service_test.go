package record

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medponto/clinica-core/internal/model"
	"github.com/medponto/clinica-core/internal/repository/kv"
	"github.com/medponto/clinica-core/internal/service/audit"
	apperrors "github.com/medponto/clinica-core/pkg/errors"
	"github.com/medponto/clinica-core/pkg/idgen"
	"github.com/medponto/clinica-core/pkg/kvstore/memory"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/logger"
	"github.com/medponto/clinica-core/pkg/validator"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := memory.New()
	guard := serial.NewGuard()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	auditor := audit.NewService(kv.NewAuditRepository(store, guard, nil), log)

	return NewService(kv.NewMedicalRecordRepository(store, guard, nil),
		validator.New(), idgen.New(), auditor, log)
}

func TestAddEntry(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.AddEntry(context.Background(), &model.AddEntryRequest{
		Observations: "patient reports recurring headaches",
		Diagnosis:    "tension headache",
		Prescription: "ibuprofen 400mg",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, time.Now().Format(dateLayout), entry.CreatedAt)
	assert.Equal(t, "tension headache", entry.Diagnosis)
}

func TestAddEntryValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.AddEntry(ctx, &model.AddEntryRequest{Diagnosis: "flu"})
	assert.Nil(t, entry)
	assert.True(t, apperrors.IsValidation(err), "got %v", err)

	entry, err = svc.AddEntry(ctx, &model.AddEntryRequest{Observations: "fever"})
	assert.Nil(t, entry)
	assert.True(t, apperrors.IsValidation(err), "got %v", err)
}

func TestAddEntryPrescriptionOptional(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.AddEntry(context.Background(), &model.AddEntryRequest{
		Observations: "routine check",
		Diagnosis:    "healthy",
	})
	require.NoError(t, err)
	assert.Empty(t, entry.Prescription)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.AddEntry(ctx, &model.AddEntryRequest{
		Observations: "first visit", Diagnosis: "a",
	})
	require.NoError(t, err)
	second, err := svc.AddEntry(ctx, &model.AddEntryRequest{
		Observations: "second visit", Diagnosis: "b",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
