package cmdline

import (
	"github.com/spf13/cobra"
)

// RunFunc is called by a parser command once its arguments are parsed.
type RunFunc func(cmd *cobra.Command, p *Parser) error

// Command returns a cobra command driven by the parser. Cobra's own flag
// parsing is disabled: all arguments are handed to Parse, and run is called
// if parsing succeeds. When help is requested the usage is printed and the
// command succeeds without calling run. Other errors are reported (message
// and usage) to the command's outputs, and returned from Execute.
func (p *Parser) Command(run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                p.programName + " [options]",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := p.Parse(args); err != nil {
				p.report(cmd.OutOrStdout(), cmd.ErrOrStderr(), err)

				if WroteHelp(err) {
					return nil
				}

				return err
			}

			if run == nil {
				return nil
			}

			return run(cmd, p)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		p.WriteUsage(c.OutOrStdout())
	})

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		p.WriteUsage(c.OutOrStderr())

		return nil
	})

	return cmd
}
