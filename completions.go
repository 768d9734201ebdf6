package cmdline

import (
	"strings"

	"github.com/rsteube/carapace"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

// Complete attaches shell completions for the parser options to cmd, which
// is normally the command returned by Command. Options already given on the
// command line, and those mutually exclusive with them, are not proposed.
func (p *Parser) Complete(cmd *cobra.Command) {
	carapace.Gen(cmd).PositionalAnyCompletion(
		carapace.ActionCallback(p.completeOptions),
	)
}

// completeOptions proposes all usable aliases, described with their option.
func (p *Parser) completeOptions(ctx carapace.Context) carapace.Action {
	used := p.usedOptions(ctx.Args)

	// A word after an option, not starting with a dash, is a free-form value.
	if len(ctx.Args) > 0 && !strings.HasPrefix(ctx.Value, "-") {
		if _, isOption := p.aliases[ctx.Args[len(ctx.Args)-1]]; isOption {
			return carapace.ActionValues()
		}
	}

	var described []string

	for _, opt := range p.options {
		if slices.Contains(used, opt) || p.excludedBy(opt, used) {
			continue
		}

		for _, alias := range opt.aliases {
			described = append(described, alias, opt.description)
		}
	}

	return carapace.ActionValuesDescribed(described...)
}

// usedOptions returns the options matched by the given words, in order.
func (p *Parser) usedOptions(args []string) []*option {
	var used []*option

	for _, arg := range args {
		if opt, found := p.aliases[arg]; found && !slices.Contains(used, opt) {
			used = append(used, opt)
		}
	}

	return used
}

// excludedBy returns true if opt cannot be used alongside any of the used options.
func (p *Parser) excludedBy(opt *option, used []*option) bool {
	for _, other := range used {
		if slices.Contains(opt.exclusive, other.name) || slices.Contains(other.exclusive, opt.name) {
			return true
		}
	}

	return false
}
