package boolexpr

import (
	"fmt"
)

// SyntaxErrorKind classifies why an expression failed to parse.
type SyntaxErrorKind int

const (
	EmptyInput SyntaxErrorKind = iota
	UnexpectedToken
	UnbalancedParens
	UnknownOperator
)

func (k SyntaxErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case UnexpectedToken:
		return "unexpected token"
	case UnbalancedParens:
		return "unbalanced parentheses"
	case UnknownOperator:
		return "unknown operator"
	default:
		return "syntax error"
	}
}

// SyntaxError is returned for every parse failure. Pos is the rune offset
// into the input where parsing gave up.
type SyntaxError struct {
	Kind SyntaxErrorKind
	Pos  int
}

// NewSyntaxError creates a new SyntaxError of the given kind at the given
// rune offset.
func NewSyntaxError(kind SyntaxErrorKind, pos int) error {
	return &SyntaxError{Kind: kind, Pos: pos}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Kind, e.Pos)
}

// UnknownVariableError is returned when an expression references a variable
// missing from the assignment passed to Solve. Assignments built from
// Vars() always cover every variable, so hitting this means a bug in the
// caller.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}
