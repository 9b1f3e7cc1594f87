package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong-pass"))
}

func TestHashesAreSalted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestOutOfRangeCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(99)

	hash, err := h.Hash("pass")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
