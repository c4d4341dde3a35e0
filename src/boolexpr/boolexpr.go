package boolexpr

import (
	"fmt"
)

type Operator int

const (
	VARIABLE Operator = iota
	NOT
	AND
	OR
	IMPLIES
	IFF
)

var operatorSymbols = map[Operator]string{
	AND:     "*",
	OR:      "+",
	IMPLIES: "=>",
	IFF:     "<=>",
}

// Node is one node of a parsed expression tree. VARIABLE nodes carry a
// variable name and no children, NOT nodes only use Left, and all other
// operators use both Left and Right. Trees are never modified after New
// returns them.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	variableName string
}

// New parses a fully-parenthesized propositional-logic expression into a
// solvable tree. Variables are single symbols, negation is written `(- A)`
// and every binary operation carries its own parentheses, so `A`, `(- A)`,
// `(A * B)`, `(A + B)`, `(A => B)` and `(A <=> B)` are all valid while
// `A * B` is not.
// Example usage:
//
//	tree, err := boolexpr.New("(A => (- B))")
//	if err != nil {
//		log.Fatalf("failed to create expression tree: %v", err)
//	}
//	fmt.Println(tree.Solve(map[string]bool{"A": true, "B": false}))
//	// Output: true <nil>
func New(expression string) (*Node, error) {
	root, err := parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return root, nil
}

// Vars returns the distinct variable names of the expression, ordered by
// where each name first appears in the source text. The order is a
// contract; the truth-table builder uses it for column ordering and bit
// significance.
func (n *Node) Vars() []string {
	var vars []string
	seen := make(map[string]bool)

	var walk func(node *Node)
	walk = func(node *Node) {
		if node == nil {
			return
		}
		if node.Operator == VARIABLE && !seen[node.variableName] {
			seen[node.variableName] = true
			vars = append(vars, node.variableName)
		}
		walk(node.Left)
		walk(node.Right)
	}
	walk(n)

	return vars
}

// Steps returns every distinct sub-expression of the tree, children before
// parents and left subtrees before right ones, so the list reads in the
// same order as the source text. Duplicate sub-expressions appear once, at
// their first position. The last element is always the receiver.
func (n *Node) Steps() []*Node {
	var steps []*Node

	contains := func(candidate *Node) bool {
		for _, step := range steps {
			if step.Equal(candidate) {
				return true
			}
		}
		return false
	}

	var collect func(node *Node)
	collect = func(node *Node) {
		if node == nil {
			return
		}
		collect(node.Left)
		collect(node.Right)
		if !contains(node) {
			steps = append(steps, node)
		}
	}
	collect(n)

	return steps
}

// Equal reports whether two trees have the same shape, operators and
// variable names.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Operator != other.Operator || n.variableName != other.variableName {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// String renders the tree back into source syntax, e.g. "(A * (- B))".
func (n *Node) String() string {
	switch n.Operator {
	case VARIABLE:
		return n.variableName
	case NOT:
		return fmt.Sprintf("(- %s)", n.Left)
	default:
		return fmt.Sprintf("(%s %s %s)", n.Left, operatorSymbols[n.Operator], n.Right)
	}
}
