package boolexpr

import (
	"unicode"
)

// The grammar is deliberately precedence-free. Every unary and binary
// operation carries its own parentheses, so the tree shape is fully
// determined by the input and no precedence climbing is needed:
//
//	Expr := Variable
//	      | '(' '-' Expr ')'
//	      | '(' Expr '*' Expr ')'
//	      | '(' Expr '+' Expr ')'
//	      | '(' Expr '=>' Expr ')'
//	      | '(' Expr '<=>' Expr ')'
//
// A variable is any single printable symbol that isn't an operator
// character, a parenthesis or whitespace. Whitespace between tokens is
// ignored.
type parser struct {
	input []rune
	pos   int
}

// This is the entry point of the parsing
func parse(expression string) (*Node, error) {
	p := &parser{input: []rune(expression)}

	p.skipWhitespace()
	if p.atEnd() {
		return nil, NewSyntaxError(EmptyInput, p.pos)
	}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	// anything left over after a complete expression is an error
	p.skipWhitespace()
	if !p.atEnd() {
		if p.peek() == ')' {
			return nil, NewSyntaxError(UnbalancedParens, p.pos)
		}
		return nil, NewSyntaxError(UnexpectedToken, p.pos)
	}

	return root, nil
}

func (p *parser) parseExpr() (*Node, error) {
	p.skipWhitespace()
	if p.atEnd() {
		return nil, NewSyntaxError(UnbalancedParens, p.pos)
	}
	if p.peek() == '(' {
		return p.parseForm()
	}
	return p.parseVariable()
}

// parseForm parses one parenthesized form. The cursor is on the '('.
func (p *parser) parseForm() (*Node, error) {
	p.pos++ // consume '('

	p.skipWhitespace()
	if p.atEnd() {
		return nil, NewSyntaxError(UnbalancedParens, p.pos)
	}

	// a '-' directly after '(' is negation and takes a single operand
	if p.peek() == '-' {
		p.pos++
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectClosingParen(); err != nil {
			return nil, err
		}
		return &Node{Operator: NOT, Left: child}, nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	operator, err := p.parseOperator()
	if err != nil {
		return nil, err
	}

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if err := p.expectClosingParen(); err != nil {
		return nil, err
	}

	return &Node{Operator: operator, Left: left, Right: right}, nil
}

func (p *parser) parseVariable() (*Node, error) {
	symbol := p.peek()
	if symbol == ')' || isOperatorRune(symbol) || !unicode.IsPrint(symbol) {
		return nil, NewSyntaxError(UnexpectedToken, p.pos)
	}
	p.pos++
	return &Node{Operator: VARIABLE, variableName: string(symbol)}, nil
}

func (p *parser) parseOperator() (Operator, error) {
	p.skipWhitespace()
	if p.atEnd() {
		return 0, NewSyntaxError(UnbalancedParens, p.pos)
	}

	switch p.peek() {
	case '*':
		p.pos++
		return AND, nil
	case '+':
		p.pos++
		return OR, nil
	case '=':
		if p.lookingAt("=>") {
			p.pos += 2
			return IMPLIES, nil
		}
	case '<':
		if p.lookingAt("<=>") {
			p.pos += 3
			return IFF, nil
		}
	}

	return 0, NewSyntaxError(UnknownOperator, p.pos)
}

func (p *parser) expectClosingParen() error {
	p.skipWhitespace()
	if p.atEnd() || p.peek() != ')' {
		return NewSyntaxError(UnbalancedParens, p.pos)
	}
	p.pos++
	return nil
}

func (p *parser) skipWhitespace() {
	for !p.atEnd() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) atEnd() bool {
	return p.pos >= len(p.input)
}

// peek returns the rune under the cursor. Callers check atEnd first.
func (p *parser) peek() rune {
	return p.input[p.pos]
}

func (p *parser) lookingAt(token string) bool {
	runes := []rune(token)
	if p.pos+len(runes) > len(p.input) {
		return false
	}
	for i, r := range runes {
		if p.input[p.pos+i] != r {
			return false
		}
	}
	return true
}

func isOperatorRune(r rune) bool {
	return r == '-' || r == '*' || r == '+' || r == '=' || r == '<' || r == '>'
}
