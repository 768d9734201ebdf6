package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	flagerrors "github.com/reeflective/cmdline/internal/errors"
)

// invalidDefError wraps an error raised by validator on an option
// definition, and rewrites its message for command-line developers.
type invalidDefError struct {
	option       string
	field        validator.FieldError
	validatorErr error
}

// Error implements the error interface, replacing the validator's
// struct-oriented messages with ones naming the option and its parts.
func (err *invalidDefError) Error() string {
	if err.field == nil {
		return fmt.Sprintf("%s: %s", flagerrors.ErrInvalidDefinition, err.validatorErr)
	}

	part := describeField(err.field.Field())

	if err.field.Tag() == "required" {
		if err.field.StructField() == "Name" {
			return fmt.Sprintf("%s: option name is required", flagerrors.ErrInvalidDefinition)
		}

		return fmt.Sprintf("%s: %s of option %q is empty", flagerrors.ErrInvalidDefinition, part, err.option)
	}

	return fmt.Sprintf("%s: %s of option %q: `%v` is not a valid %s",
		flagerrors.ErrInvalidDefinition, part, err.option, err.field.Value(), err.field.Tag())
}

// Unwrap makes the error match errors.ErrInvalidDefinition.
func (err *invalidDefError) Unwrap() []error {
	return []error{flagerrors.ErrInvalidDefinition, err.validatorErr}
}

// describeField turns a validator field name like "Aliases[1]"
// into a human-readable one like "alias #2".
func describeField(field string) string {
	name, rest, indexed := strings.Cut(field, "[")

	var noun string

	switch name {
	case "Name":
		return "name"
	case "Description":
		return "description"
	case "Aliases":
		noun = "alias"
	case "Exclusive":
		noun = "mutually exclusive option"
	default:
		noun = strings.ToLower(name)
	}

	if !indexed {
		return noun
	}

	idx, err := strconv.Atoi(strings.TrimSuffix(rest, "]"))
	if err != nil {
		return noun
	}

	return fmt.Sprintf("%s #%d", noun, idx+1)
}
