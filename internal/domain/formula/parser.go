package formula

import (
	"fmt"
	"math"
)

// Recursive-descent parser producing a small AST. There is no execution
// facility behind it: every node evaluates to a float64 through the
// interpreter in eval.go, and only whitelisted functions exist.
//
// Grammar:
//
//	expression := additive (cmpOp additive)?
//	additive   := term (('+' | '-') term)*
//	term       := unary (('*' | '/') unary)*
//	unary      := ('+' | '-')? primary
//	primary    := NUMBER | IDENT '(' args ')' | IDENT | '(' expression ')'

type node interface {
	eval() (float64, error)
}

type numberNode float64

type unaryNode struct {
	negate  bool
	operand node
}

type binaryNode struct {
	op          tokenKind
	left, right node
}

type callNode struct {
	name string
	args []node
}

type parser struct {
	toks []token
	pos  int
}

func parseFormula(input string) (node, error) {
	lx := &lexer{input: input}
	toks, err := lx.lexAll()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.current().kind != tokEOF {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.current().text, p.current().pos)
	}
	return n, nil
}

func (p *parser) current() token {
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.current().kind != kind {
		return fmt.Errorf("expected %s at position %d, got %q", what, p.current().pos, p.current().text)
	}
	p.advance()
	return nil
}

func (p *parser) parseExpression() (node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	switch p.current().kind {
	case tokLT, tokGT, tokLE, tokGE, tokEQ, tokNE:
		op := p.advance().kind
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return binaryNode{op: op, left: left, right: right}, nil
	}
	return left, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.current().kind == tokPlus || p.current().kind == tokMinus {
		op := p.advance().kind
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().kind == tokStar || p.current().kind == tokSlash {
		op := p.advance().kind
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (node, error) {
	switch p.current().kind {
	case tokMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{negate: true, operand: operand}, nil
	case tokPlus:
		p.advance()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (node, error) {
	t := p.current()
	switch t.kind {
	case tokNumber:
		p.advance()
		return numberNode(t.num), nil
	case tokLParen:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen, "closing parenthesis"); err != nil {
			return nil, err
		}
		return inner, nil
	case tokIdent:
		return p.parseIdent()
	case tokEOF:
		return nil, fmt.Errorf("unexpected end of formula")
	}
	return nil, fmt.Errorf("unexpected token %q at position %d", t.text, t.pos)
}

func (p *parser) parseIdent() (node, error) {
	t := p.advance()
	if p.current().kind == tokLParen {
		if _, ok := functions[t.text]; !ok {
			return nil, fmt.Errorf("unknown function %q at position %d", t.text, t.pos)
		}
		p.advance()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if err := checkArity(t.text, len(args)); err != nil {
			return nil, err
		}
		return callNode{name: t.text, args: args}, nil
	}

	switch t.text {
	case "PI":
		return numberNode(math.Pi), nil
	case "E":
		return numberNode(math.E), nil
	}
	return nil, fmt.Errorf("undefined identifier %q at position %d", t.text, t.pos)
}

func (p *parser) parseArgs() ([]node, error) {
	var args []node
	if p.current().kind == tokRParen {
		p.advance()
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch p.current().kind {
		case tokComma:
			p.advance()
		case tokRParen:
			p.advance()
			return args, nil
		default:
			return nil, fmt.Errorf("expected ',' or ')' at position %d, got %q", p.current().pos, p.current().text)
		}
	}
}
