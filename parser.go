package cmdline

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Parse scans the command-line arguments (without the program name) from left
// to right, and marks each option matched by a token as set. A token following
// a matched option is consumed as its value, unless it starts with a dash.
//
// Parse returns nil on success. Otherwise it stops at the first problem and
// returns an *Error: ErrHelp if -h or --help was given anywhere, ErrDefinition
// if an exclusivity constraint names an unregistered option, ErrUnrecognizedOption,
// ErrMutuallyExclusive or ErrRequired. A parser can only be parsed once.
func (p *Parser) Parse(args []string) error {
	if p.parsed {
		return newError(ErrAlreadyParsed, "arguments already parsed")
	}

	p.parsed = true

	if err := p.resolveExclusions(); err != nil {
		return err
	}

	for _, arg := range args {
		if slices.Contains(helpFlags, arg) {
			return newError(ErrHelp, "help requested")
		}
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		opt, found := p.aliases[arg]
		if !found {
			return p.unrecognized(arg)
		}

		if conflict := p.conflicting(opt); conflict != nil {
			err := newErrorf(ErrMutuallyExclusive, "Options %q and %q are mutually exclusive.", conflict.name, arg)
			err.Option = opt.name
			err.Conflict = conflict.name
			err.Token = arg

			return err
		}

		opt.set = true

		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			opt.value = args[i+1]
			i++
		}
	}

	for _, name := range p.required {
		if !p.HasOption(name) {
			err := newErrorf(ErrRequired, "%s is a required option.", name)
			err.Option = name

			return err
		}
	}

	return nil
}

// resolveExclusions checks that all mutually exclusive options are registered.
func (p *Parser) resolveExclusions() error {
	for _, opt := range p.options {
		for _, other := range opt.exclusive {
			if _, found := p.index[other]; !found {
				return definitionError(opt.name, fmt.Errorf("%w: %q excludes %q", ErrUnknownExclusive, opt.name, other))
			}
		}
	}

	return nil
}

// conflicting returns an already set option that cannot be used with opt:
// either one opt declares as exclusive, or one declaring opt as exclusive.
func (p *Parser) conflicting(opt *option) *option {
	for _, name := range opt.exclusive {
		if other := p.index[name]; other.set {
			return other
		}
	}

	for _, other := range p.options {
		if other.set && other != opt && slices.Contains(other.exclusive, opt.name) {
			return other
		}
	}

	return nil
}

// unrecognized builds the error for a token matching no alias,
// with the closest registered alias as a suggestion.
func (p *Parser) unrecognized(arg string) *Error {
	err := newErrorf(ErrUnrecognizedOption, "Invalid option %q.", arg)
	err.Token = arg

	var aliases []string
	for _, opt := range p.options {
		aliases = append(aliases, opt.aliases...)
	}

	if closest, dist := closestChoice(arg, aliases); closest != "" && dist <= maxSuggestDistance(arg) {
		err.Suggestion = closest
	}

	return err
}
