package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/medponto/clinica-core/pkg/errors"
)

// Validator validates request structs tagged with `validate` rules and reports
// the first failing field as a field-specific validation error.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// taxid accepts the two legal identifier lengths (11 for individuals,
	// 14 for organizations). No checksum is applied.
	_ = v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		l := len(fl.Field().String())
		return l == 11 || l == 14
	})

	return &Validator{v: v}
}

// Struct validates obj and converts the first rule failure into a typed
// validation error naming the offending field.
func (v *Validator) Struct(obj interface{}) error {
	err := v.v.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidation(fe.Field(), messageFor(fe))
	}
	return apperrors.NewValidation("request", "is invalid")
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "eqfield":
		return fmt.Sprintf("must match %s", fe.Param())
	case "taxid":
		return "must be 11 or 14 characters long"
	default:
		return "is invalid"
	}
}
