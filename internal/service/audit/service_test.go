package audit

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medponto/clinica-core/internal/repository/kv"
	"github.com/medponto/clinica-core/pkg/kvstore/memory"
	"github.com/medponto/clinica-core/pkg/kvstore/serial"
	"github.com/medponto/clinica-core/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store := memory.New()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
	return NewService(kv.NewAuditRepository(store, serial.NewGuard(), nil), log)
}

func TestRecordAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.Record(ctx, "register", "account", "maria", "maria")
	svc.Record(ctx, "login", "session", "maria", "maria")
	svc.Record(ctx, "schedule", "appointment", "173", "")

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// entries come back in the order they were recorded
	assert.Equal(t, "register", entries[0].Action)
	assert.Equal(t, "login", entries[1].Action)
	assert.Equal(t, "schedule", entries[2].Action)

	assert.Equal(t, "account", entries[0].EntityType)
	assert.Equal(t, "maria", entries[0].Actor)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].CreatedAt.IsZero())
}

func TestListEmpty(t *testing.T) {
	svc := newTestService(t)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
