package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medponto/clinica-core/pkg/kvstore"
)

func TestStore(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "consultas", `[{"id":"1"}]`))

	got, err := s.Get(ctx, "consultas")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, got)

	require.NoError(t, s.Remove(ctx, "consultas"))
	_, err = s.Get(ctx, "consultas")
	assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)

	require.NoError(t, s.Remove(ctx, "consultas"))
}

// Documents written by one store must be readable by a store reopened on the
// same directory, like an app restart.
func TestReopenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "usuario_maria", `{"username":"maria"}`))

	second, err := New(dir)
	require.NoError(t, err)

	got, err := second.Get(ctx, "usuario_maria")
	require.NoError(t, err)
	assert.Equal(t, `{"username":"maria"}`, got)
}

func TestKeysWithSeparatorsStayInsideDir(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "usuario_../escape", "data"))

	got, err := s.Get(ctx, "usuario_../escape")
	require.NoError(t, err)
	assert.Equal(t, "data", got)
}
