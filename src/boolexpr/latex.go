package boolexpr

import (
	"fmt"
)

// LaTeX renders the expression as LaTeX math markup, one macro per
// operator: `\neg`, `\wedge`, `\vee`, `\rightarrow` and `\iff`. Binary
// forms keep their parentheses so the markup reads like the source text.
func (n *Node) LaTeX() string {
	switch n.Operator {
	case VARIABLE:
		return n.variableName
	case NOT:
		return fmt.Sprintf("\\neg %s", n.Left.LaTeX())
	case AND:
		return fmt.Sprintf("(%s \\wedge %s)", n.Left.LaTeX(), n.Right.LaTeX())
	case OR:
		return fmt.Sprintf("(%s \\vee %s)", n.Left.LaTeX(), n.Right.LaTeX())
	case IMPLIES:
		return fmt.Sprintf("(%s \\rightarrow %s)", n.Left.LaTeX(), n.Right.LaTeX())
	case IFF:
		return fmt.Sprintf("(%s \\iff %s)", n.Left.LaTeX(), n.Right.LaTeX())
	default:
		return ""
	}
}
