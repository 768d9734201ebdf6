// Package cmdline provides a small command-line option registry and parser.
//
// Callers declare named options (with aliases, a description, a required
// status and mutual-exclusivity constraints) on a Parser, feed it the process
// argument vector once, and then query whether each option was given and which
// value, if any, followed it on the command line. Values are opaque text.
//
// Parsing never exits the process: every failure is returned as an *Error
// whose Type tells the caller what happened. ParseOrExit is a thin wrapper
// reproducing the classic behavior (print diagnostics and usage, then exit).
//
// A Parser is not safe for concurrent use.
package cmdline

import (
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/reeflective/cmdline/internal/validation"
)

// DefaultProgramName is used in usage text when no program name is given.
const DefaultProgramName = "[program]"

// Parser is an ordered registry of options, consumed once by Parse.
type Parser struct {
	programName string
	stdout      io.Writer
	stderr      io.Writer
	validate    validation.ValidateFunc

	options  []*option
	index    map[string]*option
	aliases  map[string]*option
	required []string
	parsed   bool
}

// option is a single registered command-line option.
type option struct {
	name        string
	description string
	aliases     []string
	exclusive   []string
	required    bool
	set         bool
	value       string
}

// New returns an empty parser, configured with the given options.
func New(opts ...Option) *Parser {
	parser := &Parser{
		programName: DefaultProgramName,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		index:       make(map[string]*option),
		aliases:     make(map[string]*option),
	}

	for _, opt := range opts {
		opt(parser)
	}

	if parser.validate == nil {
		parser.validate = validation.NewDefault()
	}

	return parser
}

// === Configuration (Functional Options) ===

// Option is a functional option for configuring a Parser.
type Option func(p *Parser)

// WithProgramName sets the program name printed in the usage text.
func WithProgramName(name string) Option {
	return func(p *Parser) { p.programName = name }
}

// WithOutput sets the writer to which usage is printed by ParseOrExit.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) { p.stdout = w }
}

// WithErrorOutput sets the writer to which diagnostics are printed by ParseOrExit.
func WithErrorOutput(w io.Writer) Option {
	return func(p *Parser) { p.stderr = w }
}

// WithValidator registers a custom validator for option definitions.
// It is required to pass a go-playground/validator object, on which
// users can register their own validations for validation.Definition.
func WithValidator(v *validator.Validate) Option {
	return func(p *Parser) { p.validate = validation.NewWith(v) }
}

// === Query ===

// HasOption returns true if the named option was given on the command line.
// It returns false for names that were never registered.
func (p *Parser) HasOption(name string) bool {
	opt, found := p.index[name]

	return found && opt.set
}

// OptionValue returns the value that followed the named option on the
// command line. The value is empty if the option was not given, or was
// given without a value. An error of type ErrUnknownOption is returned
// if no option has been registered under this name.
func (p *Parser) OptionValue(name string) (string, error) {
	opt, err := p.lookup(name)
	if err != nil {
		return "", err
	}

	return opt.value, nil
}

// OptionDescription returns the description of the named option, or
// an error of type ErrUnknownOption if it was never registered.
func (p *Parser) OptionDescription(name string) (string, error) {
	opt, err := p.lookup(name)
	if err != nil {
		return "", err
	}

	return opt.description, nil
}

// Aliases returns all spellings of the named option, its name first.
func (p *Parser) Aliases(name string) ([]string, error) {
	opt, err := p.lookup(name)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), opt.aliases...), nil
}

// Options returns the names of all registered options, in registration order.
func (p *Parser) Options() []string {
	names := make([]string, 0, len(p.options))
	for _, opt := range p.options {
		names = append(names, opt.name)
	}

	return names
}

// ProgramName returns the program name used in usage text.
func (p *Parser) ProgramName() string {
	return p.programName
}

func (p *Parser) lookup(name string) (*option, error) {
	opt, found := p.index[name]
	if !found {
		err := newErrorf(ErrUnknownOption, "Unknown option %q.", name)
		err.Option = name

		return nil, err
	}

	return opt, nil
}
