package boolexpr

import (
	"fmt"
)

// Solve evaluates the expression under the given assignment of variable
// names to booleans. Implication is material (`(A => B)` is `(- A) + B`)
// and `<=>` is plain equality of the two sides. Evaluation is total; the
// only possible error is a variable missing from the assignment.
func (n *Node) Solve(assignment map[string]bool) (bool, error) {
	if n.Operator == VARIABLE {
		value, ok := assignment[n.variableName]
		if !ok {
			return false, NewUnknownVariableError(n.variableName)
		}
		return value, nil
	}

	if n.Operator == NOT {
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	case IMPLIES:
		return !leftResult || rightResult, nil
	case IFF:
		return leftResult == rightResult, nil
	default:
		return false, fmt.Errorf("unknown operator: %v", n.Operator)
	}
}
