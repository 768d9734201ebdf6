package cmdline

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/reeflective/cmdline/internal/validation"
)

// helpFlags always print the usage, and cannot be used as aliases.
var helpFlags = []string{"-h", "--help"}

// OptionFunc sets the properties of an option being registered.
type OptionFunc func(def *definition)

// definition accumulates the properties given to AddOption.
type definition struct {
	aliases   []string
	required  bool
	exclusive []string
}

// Aliases adds alternate spellings for the option, in addition to its name.
func Aliases(aliases ...string) OptionFunc {
	return func(def *definition) { def.aliases = append(def.aliases, aliases...) }
}

// Required marks the option as mandatory: Parse fails if it is not given.
func Required() OptionFunc {
	return func(def *definition) { def.required = true }
}

// MutuallyExclusiveWith declares options that cannot be given together with
// this one. The constraint is symmetric, and the named options may be
// registered after this one, as long as they are registered before Parse.
func MutuallyExclusiveWith(names ...string) OptionFunc {
	return func(def *definition) { def.exclusive = append(def.exclusive, names...) }
}

// AddOption registers a new option. The option can be spelled on the command
// line with its name, or with any of its aliases.
//
// Registering the same name twice, or an alias already used by another
// option, returns an error of type ErrDefinition: the first registration
// always wins, so that matching tokens against aliases is never ambiguous.
func (p *Parser) AddOption(name, description string, opts ...OptionFunc) error {
	if p.parsed {
		return newErrorf(ErrAlreadyParsed, "cannot add option %q: arguments already parsed", name)
	}

	def := &definition{}
	for _, opt := range opts {
		opt(def)
	}

	if err := p.validate(validation.Definition{
		Name:        name,
		Description: description,
		Aliases:     def.aliases,
		Exclusive:   def.exclusive,
	}); err != nil {
		return definitionError(name, err)
	}

	if _, exists := p.index[name]; exists {
		return definitionError(name, fmt.Errorf("%w: %q", ErrDuplicateOption, name))
	}

	opt := &option{
		name:        name,
		description: description,
		required:    def.required,
	}

	for _, alias := range append([]string{name}, def.aliases...) {
		if slices.Contains(opt.aliases, alias) {
			continue
		}

		if slices.Contains(helpFlags, alias) {
			return definitionError(name, fmt.Errorf("%w: %q", ErrReservedAlias, alias))
		}

		if owner, claimed := p.aliases[alias]; claimed {
			return definitionError(name, fmt.Errorf("%w: %q belongs to %q", ErrAliasConflict, alias, owner.name))
		}

		opt.aliases = append(opt.aliases, alias)
	}

	for _, other := range def.exclusive {
		if other != name && !slices.Contains(opt.exclusive, other) {
			opt.exclusive = append(opt.exclusive, other)
		}
	}

	for _, alias := range opt.aliases {
		p.aliases[alias] = opt
	}

	p.index[name] = opt
	p.options = append(p.options, opt)

	if opt.required {
		p.required = append(p.required, name)
	}

	return nil
}
