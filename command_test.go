package cmdline

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes a parser command with args, returning
// whether run was called, its outputs and execution error.
func runCommand(t *testing.T, parser *Parser, args ...string) (bool, string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	ran := false
	cmd := parser.Command(func(_ *cobra.Command, p *Parser) error {
		ran = true

		assert.Same(t, parser, p)

		return nil
	})

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return ran, stdout.String(), stderr.String(), err
}

func TestCommandRunsAfterParsing(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t, false)

	ran, stdout, stderr, err := runCommand(t, parser, "--file", "out.txt", "-v")
	require.NoError(t, err)

	assert.True(t, ran)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.True(t, parser.HasOption("--verbose"))

	value, err := parser.OptionValue("--file")
	require.NoError(t, err)
	assert.Equal(t, "out.txt", value)
}

func TestCommandHelp(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t, true)

	ran, stdout, stderr, err := runCommand(t, parser, "--help")
	require.NoError(t, err)

	assert.False(t, ran)
	assert.Equal(t, parser.Usage(), stdout)
	assert.Empty(t, stderr)
}

func TestCommandParseError(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t, true)

	ran, stdout, stderr, err := runCommand(t, parser, "--verbose")
	requireParserError(t, err, ErrRequired)

	assert.False(t, ran)
	assert.Equal(t, "Error: --req is a required option.\n", stderr)
	assert.Equal(t, parser.Usage(), stdout)
	assert.Equal(t, ExitFailure, ExitCode(err))
}

func TestCommandNilRun(t *testing.T) {
	t.Parallel()

	parser := newTestParser(t, false)

	cmd := parser.Command(nil)
	cmd.SetArgs([]string{"-f"})

	require.NoError(t, cmd.Execute())
	assert.True(t, parser.HasOption("--file"))
	assert.Equal(t, "test", cmd.Name())
}
