package cmdline

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit codes used by ParseOrExit.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

var (
	defaultExit = os.Exit
	osExit      = defaultExit
)

// ParseOrExit parses the arguments and, unless parsing succeeded, terminates
// the process: the usage is printed and the process exits with ExitSuccess
// if help was requested; otherwise the error is printed to the error output,
// followed by the usage, and the process exits with ExitFailure.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	if err == nil {
		return
	}

	p.Report(err)
	osExit(ExitCode(err))
}

// Report prints what ParseOrExit prints for a parsing error, without exiting.
// Nothing is printed for a nil error.
func (p *Parser) Report(err error) {
	p.report(p.stdout, p.stderr, err)
}

func (p *Parser) report(stdout, stderr io.Writer, err error) {
	if err == nil {
		return
	}

	if !WroteHelp(err) {
		fmt.Fprintf(stderr, "Error: %s\n", err)

		var parserErr *Error
		if errors.As(err, &parserErr) && parserErr.Suggestion != "" {
			fmt.Fprintf(stderr, "Did you mean %q?\n", parserErr.Suggestion)
		}
	}

	p.WriteUsage(stdout)
}

// ExitCode returns the process exit status corresponding to a Parse error.
func ExitCode(err error) int {
	if err == nil || WroteHelp(err) {
		return ExitSuccess
	}

	return ExitFailure
}
