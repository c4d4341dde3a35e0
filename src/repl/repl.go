package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-tabler/src/boolexpr"
	"github.com/eriklarko/truth-tabler/src/config"
	"github.com/eriklarko/truth-tabler/src/environment"
	"github.com/eriklarko/truth-tabler/src/phraser"
	"github.com/eriklarko/truth-tabler/src/table"
)

// REPL reads one expression per line, prints its truth table as LaTeX and
// repeats until the input stream is closed. Syntax errors are reported on
// the output and never end the session.
type REPL struct {
	input  io.Reader
	output io.Writer

	config       *config.Config
	errorPhrases *phraser.Phraser
}

func New(config *config.Config) *REPL {
	return &REPL{
		input:  os.Stdin,
		output: os.Stdout,
		config: config,
		errorPhrases: phraser.New([]string{
			"That didn't parse: %s",
			"Still not an expression: %s",
			"The parser disagrees: %s",
			"No table for this one: %s",
		}),
	}
}

func (r *REPL) SetInput(input io.Reader) {
	r.input = input
}

func (r *REPL) SetOutput(output io.Writer) {
	r.output = output
}

// Run blocks until the input stream is closed and returns nil on a clean
// end of input.
func (r *REPL) Run() error {
	scanner := bufio.NewScanner(r.input)
	for {
		if environment.IsInteractive() {
			fmt.Fprint(r.output, r.config.Prompt)
		}
		if !scanner.Scan() {
			break
		}

		r.handleLine(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// handleLine runs one parse-evaluate-render cycle. Nothing it does carries
// over to the next line.
func (r *REPL) handleLine(line string) {
	root, err := boolexpr.New(line)
	if err != nil {
		r.reportParseError(err)
		return
	}

	built, err := table.Build(root, table.Options{ShowSteps: r.config.ShowSteps})
	if err != nil {
		// unreachable for freshly parsed trees, but a bug here shouldn't
		// take the whole session down
		slog.Error("failed to build truth table", "expression", root.String(), "error", err)
		fmt.Fprintf(r.output, "internal error: %v\n", err)
		return
	}

	fmt.Fprintln(r.output, built.LaTeX())
}

func (r *REPL) reportParseError(err error) {
	var syntaxErr *boolexpr.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintln(r.output, r.errorPhrases.Get(syntaxErr.Error()))
		return
	}
	fmt.Fprintf(r.output, "%v\n", err)
}
