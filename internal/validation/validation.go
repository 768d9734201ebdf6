package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Definition is the shape of an option declaration as checked before
// it is added to a registry. Custom validators can register struct-level
// or tag validations against this type.
type Definition struct {
	Name        string `validate:"required"`
	Description string
	Aliases     []string `validate:"dive,required"`
	Exclusive   []string `validate:"dive,required"`
}

// ValidateFunc checks an option definition, and returns a CLI-friendly
// error wrapping errors.ErrInvalidDefinition when the definition is rejected.
type ValidateFunc func(def Definition) error

// NewDefault returns a validation function backed by a default validator.
func NewDefault() ValidateFunc {
	return NewWith(validator.New())
}

// NewWith returns a validation function backed by the given validator,
// so that users can register their own validations on definitions.
func NewWith(validate *validator.Validate) ValidateFunc {
	if validate == nil {
		validate = validator.New()
	}

	return func(def Definition) error {
		err := validate.Struct(def)
		if err == nil {
			return nil
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return &invalidDefError{option: def.Name, validatorErr: err}
		}

		return &invalidDefError{option: def.Name, field: fieldErrs[0], validatorErr: err}
	}
}
