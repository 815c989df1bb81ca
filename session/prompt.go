package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter gathers scalar values from the operator during calibration.
// Implementations block until a value is available
type Prompter interface {
	// Float shows the prompt and reads one numeric value
	Float(prompt string) (float64, error)
}

// ConsolePrompter reads operator input line by line from an input stream,
// typically stdin
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter returns a Prompter writing prompts to out and reading
// values from in
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Float shows the prompt and parses the next input line as a number.  A
// line that fails to parse is an error, the caller decides whether to
// abort or re-prompt
func (p *ConsolePrompter) Float(prompt string) (float64, error) {

	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')

	if err != nil && line == "" {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)

	value, err := strconv.ParseFloat(line, 64)

	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}

	return value, nil
}
