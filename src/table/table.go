package table

import (
	"fmt"

	"github.com/eriklarko/truth-tabler/src/boolexpr"
	"github.com/samber/lo"
)

// Options controls which columns a built table carries.
type Options struct {
	// ShowSteps adds one column per distinct sub-expression so the table
	// shows how the final value was reached. When false only the variables
	// and the full expression get columns.
	ShowSteps bool
}

// Table is a fully enumerated truth table. It holds exactly 2^k rows for k
// distinct variables, one per assignment, and Rows[i][j] is the value of
// Columns[j] under assignment i.
type Table struct {
	// Variables in first-occurrence order. Variables[0] is the most
	// significant bit of the row index, so row 0 is the all-false
	// assignment and the last row is all-true.
	Variables []string
	Columns   []*boolexpr.Node
	Rows      [][]bool
}

// Build enumerates every truth assignment of the expression's variables and
// evaluates the selected columns under each one. The variable count drives
// 2^k row growth; that cost is inherent to a full truth table.
func Build(root *boolexpr.Node, opts Options) (*Table, error) {
	variables := root.Vars()
	columns := selectColumns(root, opts)

	numRows := 1 << len(variables)
	rows := make([][]bool, 0, numRows)
	for i := 0; i < numRows; i++ {
		assignment := assignmentForRow(variables, i)

		row := make([]bool, 0, len(columns))
		for _, column := range columns {
			value, err := column.Solve(assignment)
			if err != nil {
				// parsing guarantees the assignment covers every variable,
				// so this only fires on a broken caller-built tree
				return nil, fmt.Errorf("failed to evaluate column '%s': %w", column, err)
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	return &Table{
		Variables: variables,
		Columns:   columns,
		Rows:      rows,
	}, nil
}

func selectColumns(root *boolexpr.Node, opts Options) []*boolexpr.Node {
	steps := root.Steps()
	if opts.ShowSteps {
		return steps
	}

	// the variable leaves of Steps are already in first-occurrence order
	columns := lo.Filter(steps, func(step *boolexpr.Node, _ int) bool {
		return step.Operator == boolexpr.VARIABLE
	})
	return append(columns, root)
}

// assignmentForRow decodes row index i into one truth assignment, treating
// the first variable as the most significant bit.
func assignmentForRow(variables []string, i int) map[string]bool {
	assignment := make(map[string]bool, len(variables))
	for j, name := range variables {
		bit := len(variables) - 1 - j
		assignment[name] = (i>>bit)&1 == 1
	}
	return assignment
}

// Column returns the values of the column whose expression is structurally
// equal to n, or false when no such column exists.
func (t *Table) Column(n *boolexpr.Node) ([]bool, bool) {
	for j, column := range t.Columns {
		if !column.Equal(n) {
			continue
		}

		values := make([]bool, len(t.Rows))
		for i, row := range t.Rows {
			values[i] = row[j]
		}
		return values, true
	}
	return nil, false
}
