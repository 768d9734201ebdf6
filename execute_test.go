package cmdline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitSuccess, ExitCode(newError(ErrHelp, "help requested")))
	assert.Equal(t, ExitFailure, ExitCode(newError(ErrRequired, "--x is a required option.")))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("other")))
}

func TestReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      []string
		expStderr string
		expUsage  bool
	}{
		{
			name:     "success",
			args:     []string{"--verbose"},
			expUsage: false,
		},
		{
			name:     "help",
			args:     []string{"--help"},
			expUsage: true,
		},
		{
			name:      "unrecognized with suggestion",
			args:      []string{"--fil"},
			expStderr: "Error: Invalid option \"--fil\".\nDid you mean \"--file\"?\n",
			expUsage:  true,
		},
		{
			name:      "mutually exclusive",
			args:      []string{"--a", "--b"},
			expStderr: "Error: Options \"--a\" and \"--b\" are mutually exclusive.\n",
			expUsage:  true,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer

			parser := newTestParser(t, false)
			WithOutput(&stdout)(parser)
			WithErrorOutput(&stderr)(parser)

			parser.Report(parser.Parse(test.args))

			assert.Equal(t, test.expStderr, stderr.String())

			if test.expUsage {
				assert.Equal(t, parser.Usage(), stdout.String())
			} else {
				assert.Empty(t, stdout.String())
			}
		})
	}
}

// TestParseOrExit replaces the process exit function, and cannot run in parallel.
func TestParseOrExit(t *testing.T) {
	exitCode := -1
	osExit = func(code int) { exitCode = code }

	t.Cleanup(func() { osExit = defaultExit })

	tests := []struct {
		name     string
		required bool
		args     []string
		expCode  int
	}{
		{name: "success does not exit", args: []string{"--file", "out.txt"}, expCode: -1},
		{name: "help exits with success", args: []string{"-h"}, expCode: ExitSuccess},
		{name: "unrecognized exits with failure", args: []string{"--nope"}, expCode: ExitFailure},
		{name: "missing required exits with failure", required: true, args: nil, expCode: ExitFailure},
	}

	for _, test := range tests {
		test := test

		exitCode = -1

		var stdout, stderr bytes.Buffer

		parser := newTestParser(t, test.required)
		WithOutput(&stdout)(parser)
		WithErrorOutput(&stderr)(parser)

		parser.ParseOrExit(test.args)

		require.Equal(t, test.expCode, exitCode, test.name)

		if test.expCode == ExitFailure {
			assert.Contains(t, stderr.String(), "Error: ", test.name)
			assert.Equal(t, parser.Usage(), stdout.String(), test.name)
		}
	}
}
