package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reeflective/cmdline"
)

//
// This program shows how to declare options on a parser, and how to hand
// the command line to it through cobra (with shell completions).
//
// Its own settings come first, and the options handed to the parser
// must follow a double dash:
//
//	cmdline-demo [--program-name NAME] [--describe] -- <options...>
//

// demoConfig holds the settings of the demo program itself.
type demoConfig struct {
	programName string
	describe    bool
}

func bindFlags(flags *pflag.FlagSet, cfg *demoConfig) {
	flags.StringVar(&cfg.programName, "program-name", "cmdline-demo", "program name shown in usage")
	flags.BoolVar(&cfg.describe, "describe", false, "print option descriptions along with results")
	flags.SetInterspersed(false)
}

func main() {
	cfg := &demoConfig{}

	demoFlags := pflag.NewFlagSet("cmdline-demo", pflag.ContinueOnError)
	bindFlags(demoFlags, cfg)

	if err := demoFlags.Parse(os.Args[1:]); err != nil {
		os.Exit(cmdline.ExitFailure)
	}

	parser := cmdline.New(cmdline.WithProgramName(cfg.programName))

	if err := registerOptions(parser); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmdline.ExitFailure)
	}

	rootCmd := parser.Command(func(cmd *cobra.Command, p *cmdline.Parser) error {
		return printResults(cmd, p, cfg.describe)
	})

	parser.Complete(rootCmd)

	rootCmd.SetArgs(demoFlags.Args())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(cmdline.ExitCode(err))
	}
}

func registerOptions(parser *cmdline.Parser) error {
	if err := parser.AddOption("--input", "Input file to read from",
		cmdline.Aliases("-i"),
		cmdline.Required(),
	); err != nil {
		return err
	}

	if err := parser.AddOption("--output", "Output file to write to",
		cmdline.Aliases("-o"),
	); err != nil {
		return err
	}

	if err := parser.AddOption("--verbose", "Print more details",
		cmdline.Aliases("-v"),
		cmdline.MutuallyExclusiveWith("--quiet"),
	); err != nil {
		return err
	}

	return parser.AddOption("--quiet", "Print nothing but errors",
		cmdline.Aliases("-q"),
		cmdline.MutuallyExclusiveWith("--verbose"),
	)
}

func printResults(cmd *cobra.Command, parser *cmdline.Parser, describe bool) error {
	for _, name := range parser.Options() {
		if !parser.HasOption(name) {
			continue
		}

		value, err := parser.OptionValue(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s=%q\n", name, value)

		if !describe {
			continue
		}

		desc, err := parser.OptionDescription(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", desc)
	}

	return nil
}
