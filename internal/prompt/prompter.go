package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the operator for confirmation. The orchestrator only ever
// needs a yes/no answer, so test doubles and non-CLI frontends stay trivial.
type Prompter interface {
	Confirm(msg string) (bool, error)
}

type cliPrompter struct {
	in  io.Reader
	out io.Writer
	// isTerminal guards against blocking on a prompt when stdin is not a
	// TTY (CI pipelines). Non-interactive input declines.
	isTerminal func() bool
}

// NewCLIPrompter returns a prompter reading answers from stdin.
func NewCLIPrompter() Prompter {
	return &cliPrompter{
		in:  os.Stdin,
		out: os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

// Confirm prints msg and reads a single line. Only "y" and "yes"
// (case-insensitive) count as affirmative; anything else, EOF, and
// non-interactive stdin all decline.
func (p *cliPrompter) Confirm(msg string) (bool, error) {
	if !p.isTerminal() {
		fmt.Fprintf(p.out, "%s [y/N]: declined (stdin is not a terminal, use --yes to confirm)\n", msg)
		return false, nil
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", msg)
	reader := bufio.NewReader(p.in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// AlwaysYes returns a prompter that confirms everything. Backs the --yes
// flag, where the operator affirmed up front.
func AlwaysYes() Prompter {
	return yesPrompter{}
}

type yesPrompter struct{}

func (yesPrompter) Confirm(string) (bool, error) { return true, nil }
