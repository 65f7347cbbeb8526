package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dtromb/automata"
)

const (
	Prompt  = `Enter an input ("quit" to quit): `
	QuitCmd = "quit"
)

// Session prompts on out and reads lines from in. A session can feed several
// automata in turn without losing buffered input.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run writes whether a accepts each line read. It returns nil when the user
// types quit or input is exhausted, and ctx.Err() if ctx is cancelled
// between lines.
func (s *Session) Run(ctx context.Context, a automata.Automaton) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}
		if !s.scanner.Scan() {
			fmt.Fprintln(s.out)
			return s.scanner.Err()
		}
		line := strings.TrimRight(s.scanner.Text(), "\r")
		if line == QuitCmd {
			return nil
		}
		if err := Check(a, line, s.out); err != nil {
			return err
		}
	}
}

// Run runs a single session over in and out.
func Run(ctx context.Context, a automata.Automaton, in io.Reader, out io.Writer) error {
	return NewSession(in, out).Run(ctx, a)
}

// Check writes a single result line for input.
func Check(a automata.Automaton, input string, out io.Writer) error {
	ok, err := a.Execute(input)
	if err != nil {
		slog.Debug("rejected input", "input", input, "error", err)
		_, werr := fmt.Fprintf(out, "Result for input %q: error: %v\n", input, err)
		return werr
	}
	result := "False"
	if ok {
		result = "True"
	}
	_, err = fmt.Fprintf(out, "Result for input %q: %s\n", input, result)
	return err
}
