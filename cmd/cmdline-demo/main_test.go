package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/cmdline"
)

func TestBindFlags(t *testing.T) {
	t.Parallel()

	cfg := &demoConfig{}
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindFlags(flags, cfg)

	require.NoError(t, flags.Parse([]string{"--program-name", "tool", "--describe", "--", "--input", "in.txt"}))

	assert.Equal(t, "tool", cfg.programName)
	assert.True(t, cfg.describe)
	assert.Equal(t, []string{"--input", "in.txt"}, flags.Args())
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		describe  bool
		args      []string
		expOut    string
		expErrOut string
		expCode   int
	}{
		{
			name:    "input and output",
			args:    []string{"-i", "in.txt", "--output", "out.txt", "-v"},
			expOut:  "--input=\"in.txt\"\n--output=\"out.txt\"\n--verbose=\"\"\n",
			expCode: cmdline.ExitSuccess,
		},
		{
			name:     "with descriptions",
			describe: true,
			args:     []string{"--input", "in.txt"},
			expOut:   "--input=\"in.txt\"\n    Input file to read from\n",
			expCode:  cmdline.ExitSuccess,
		},
		{
			name:      "missing input",
			args:      []string{"-q"},
			expErrOut: "Error: --input is a required option.\n",
			expCode:   cmdline.ExitFailure,
		},
		{
			name:      "verbose and quiet",
			args:      []string{"-i", "in.txt", "-q", "-v"},
			expErrOut: "Error: Options \"--quiet\" and \"-v\" are mutually exclusive.\n",
			expCode:   cmdline.ExitFailure,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			parser := cmdline.New(cmdline.WithProgramName("demo"))
			require.NoError(t, registerOptions(parser))

			cmd := parser.Command(func(cmd *cobra.Command, p *cmdline.Parser) error {
				return printResults(cmd, p, test.describe)
			})
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)
			cmd.SetArgs(test.args)

			err := cmd.Execute()
			assert.Equal(t, test.expCode, cmdline.ExitCode(err))
			assert.Equal(t, test.expErrOut, stderr.String())

			if test.expCode == cmdline.ExitSuccess {
				assert.Equal(t, test.expOut, stdout.String())
			} else {
				assert.Equal(t, parser.Usage(), stdout.String())
			}
		})
	}
}
