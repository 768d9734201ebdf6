package errors

import "errors"

var (
	// ErrInvalidDefinition indicates that an option definition failed validation
	// (empty name, empty alias or empty exclusivity reference).
	ErrInvalidDefinition = errors.New("invalid option definition")

	// ErrDuplicateOption indicates that an option name has been registered more than once.
	ErrDuplicateOption = errors.New("option already registered")

	// ErrAliasConflict indicates that an alias is already claimed by another option.
	ErrAliasConflict = errors.New("alias already used by another option")

	// ErrReservedAlias indicates that an alias collides with the built-in help flags.
	ErrReservedAlias = errors.New("alias is reserved for help")

	// ErrUnknownExclusive indicates that an option declares itself mutually
	// exclusive with an option name that was never registered.
	ErrUnknownExclusive = errors.New("mutually exclusive with an unregistered option")
)
