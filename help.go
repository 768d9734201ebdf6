package cmdline

import (
	"bufio"
	"io"
	"strings"
)

const descIndent = "      "

// WriteUsage writes the usage message, listing all options in registration
// order with their aliases, description and mutual exclusions.
func (p *Parser) WriteUsage(writer io.Writer) {
	if writer == nil {
		return
	}

	buf := bufio.NewWriter(writer)

	buf.WriteString("Usage: " + p.programName + " [options]\n")
	buf.WriteString("Options:\n")

	for _, opt := range p.options {
		p.writeOption(buf, opt)
	}

	buf.Flush()
}

// Usage returns the usage message as written by WriteUsage.
func (p *Parser) Usage() string {
	var usage strings.Builder
	p.WriteUsage(&usage)

	return usage.String()
}

// writeOption writes the aliases (each followed by a comma), then the
// description and exclusions, indented on their own lines.
func (p *Parser) writeOption(buf *bufio.Writer, opt *option) {
	buf.WriteString("  ")

	for _, alias := range opt.aliases {
		buf.WriteString(alias + ", ")
	}

	buf.WriteString("\n" + descIndent + opt.description + "\n")

	if len(opt.exclusive) == 0 {
		return
	}

	buf.WriteString(descIndent + "Mutually exclusive with:")

	for _, name := range opt.exclusive {
		buf.WriteString(" " + name)
	}

	buf.WriteString("\n")
}
