package table

import (
	"fmt"
	"strings"

	"github.com/eriklarko/truth-tabler/src/boolexpr"
	"github.com/samber/lo"
)

// LaTeX renders the table as a bordered tabular environment: one header
// row with each column's expression in math markup, then one `T`/`F` row
// per assignment.
func (t *Table) LaTeX() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\\begin{tabular}{|%s}\n", strings.Repeat("c|", len(t.Columns))))
	sb.WriteString("\\hline\n")

	headers := lo.Map(t.Columns, func(column *boolexpr.Node, _ int) string {
		return column.LaTeX()
	})
	sb.WriteString(strings.Join(headers, " & "))
	sb.WriteString(" \\\\\n\\hline\n")

	for _, row := range t.Rows {
		cells := lo.Map(row, func(value bool, _ int) string {
			if value {
				return "T"
			}
			return "F"
		})
		sb.WriteString(strings.Join(cells, " & "))
		sb.WriteString(" \\\\\n\\hline\n")
	}

	sb.WriteString("\\end{tabular}")
	return sb.String()
}
