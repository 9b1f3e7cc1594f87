package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/medponto/clinica-core/pkg/errors"
)

type sample struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	TaxID    string `validate:"required,taxid"`
	Mirror   string `validate:"eqfield=Name"`
	Optional string
}

func valid() sample {
	return sample{
		Name:   "Maria",
		Email:  "maria@example.com",
		TaxID:  "12345678901",
		Mirror: "Maria",
	}
}

func TestStructValid(t *testing.T) {
	v := New()
	require.NoError(t, v.Struct(valid()))
}

func TestStructFieldErrors(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		mutate    func(*sample)
		wantField string
	}{
		{"missing name", func(s *sample) { s.Name = ""; s.Mirror = "" }, "Name"},
		{"bad email", func(s *sample) { s.Email = "nope" }, "Email"},
		{"short tax id", func(s *sample) { s.TaxID = "123" }, "TaxID"},
		{"mirror mismatch", func(s *sample) { s.Mirror = "other" }, "Mirror"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)

			err := v.Struct(s)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestTaxIDLengths(t *testing.T) {
	v := New()

	s := valid()
	s.TaxID = "12345678901234" // 14, organization form
	require.NoError(t, v.Struct(s))

	s.TaxID = "123456789012" // 12, neither form
	err := v.Struct(s)
	assert.True(t, apperrors.IsValidation(err))
}
