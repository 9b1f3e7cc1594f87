package exam

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

	return NewService(kv.NewExamRepository(store, guard, nil),
		validator.New(), idgen.New(), auditor, log)
}

func TestRegister(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Register(context.Background(), &model.RegisterExamRequest{
		Type:   "blood count",
		Result: "normal",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "blood count", entry.Type)
	assert.Equal(t, "normal", entry.Result)
	assert.Equal(t, time.Now().Format(dateLayout), entry.CreatedAt)
}

func TestRegisterDefaultsResultToPending(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Register(context.Background(), &model.RegisterExamRequest{
		Type: "x-ray",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ExamResultPending, entry.Result)
}

func TestRegisterRequiresType(t *testing.T) {
	svc := newTestService(t)

	entry, err := svc.Register(context.Background(), &model.RegisterExamRequest{})
	assert.Nil(t, entry)
	assert.True(t, apperrors.IsValidation(err), "got %v", err)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, &model.RegisterExamRequest{Type: "blood count"})
	require.NoError(t, err)
	second, err := svc.Register(ctx, &model.RegisterExamRequest{Type: "x-ray"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}
