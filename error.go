package cmdline

import (
	"errors"
	"fmt"

	flagerrors "github.com/reeflective/cmdline/internal/errors"
)

// Definition errors, returned (wrapped in an *Error of type ErrDefinition)
// by AddOption, or by Parse when exclusivity references cannot be resolved.
var (
	// ErrInvalidDefinition indicates an empty option name, alias or exclusivity reference.
	ErrInvalidDefinition = flagerrors.ErrInvalidDefinition

	// ErrDuplicateOption indicates that an option name was registered twice.
	ErrDuplicateOption = flagerrors.ErrDuplicateOption

	// ErrAliasConflict indicates that an alias is already used by another option.
	ErrAliasConflict = flagerrors.ErrAliasConflict

	// ErrReservedAlias indicates that an alias is one of the help flags.
	ErrReservedAlias = flagerrors.ErrReservedAlias

	// ErrUnknownExclusive indicates a mutual exclusion with an unregistered option.
	ErrUnknownExclusive = flagerrors.ErrUnknownExclusive
)

// ParserError represents the type of error.
type ParserError uint

// ORDER IN WHICH THE ERROR CONSTANTS APPEAR MATTERS.
const (
	// ErrUnknown indicates a generic error.
	ErrUnknown ParserError = iota

	// ErrHelp indicates that one of the help flags was found. This is
	// a successful outcome: the caller is expected to print the usage
	// and exit with a zero status.
	ErrHelp

	// ErrUnrecognizedOption indicates a token matching no registered alias.
	ErrUnrecognizedOption

	// ErrMutuallyExclusive indicates that two options declared as
	// mutually exclusive were both given.
	ErrMutuallyExclusive

	// ErrRequired indicates that a required option was not provided.
	ErrRequired

	// ErrUnknownOption indicates a query for an option name never registered.
	ErrUnknownOption

	// ErrDefinition indicates an invalid option definition.
	ErrDefinition

	// ErrAlreadyParsed indicates that the parser has already consumed
	// its arguments, and cannot be parsed again nor receive new options.
	ErrAlreadyParsed
)

func (e ParserError) String() string {
	errs := [...]string{
		"unknown",                  // ErrUnknown
		"help",                     // ErrHelp
		"unrecognized option",      // ErrUnrecognizedOption
		"mutually exclusive",       // ErrMutuallyExclusive
		"required",                 // ErrRequired
		"unknown option",           // ErrUnknownOption
		"invalid definition",       // ErrDefinition
		"arguments already parsed", // ErrAlreadyParsed
	}
	if int(e) >= len(errs) {
		return "unrecognized error type"
	}

	return errs[e]
}

func (e ParserError) Error() string {
	return e.String()
}

// Error represents a parser error. All errors returned by a Parser are of this
// type. The error contains both a Type and Message, as well as the options
// involved, so that callers can decide whether to continue or exit.
type Error struct {
	// The type of error
	Type ParserError

	// The error message
	Message string

	// Option is the name of the option the error is about, if any.
	Option string

	// Conflict is the name of the already set option, for ErrMutuallyExclusive.
	Conflict string

	// Token is the command-line word that triggered the error, if any.
	Token string

	// Suggestion is the registered alias closest to an unrecognized token.
	Suggestion string

	err error
}

// Error returns the error's message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// Is makes errors.Is(err, ErrRequired) and friends match on the error type.
func (e *Error) Is(target error) bool {
	kind, ok := target.(ParserError)

	return ok && e.Type == kind
}

// WroteHelp is a helper to test the error from Parse() to determine
// if the help flags were found. It is safe to call without first
// checking that error is nil.
func WroteHelp(err error) bool {
	if err == nil {
		return false
	}

	var parserErr *Error
	if !errors.As(err, &parserErr) {
		return false
	}

	return parserErr.Type == ErrHelp
}

func newError(tp ParserError, message string) *Error {
	return &Error{
		Type:    tp,
		Message: message,
	}
}

func newErrorf(tp ParserError, format string, args ...any) *Error {
	return newError(tp, fmt.Sprintf(format, args...))
}

func definitionError(option string, err error) *Error {
	defErr := newErrorf(ErrDefinition, "%s", err)
	defErr.Option = option
	defErr.err = err

	return defErr
}
