package formula

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// The formula grammar is deliberately closed: digits, the four arithmetic
// operators, parentheses, commas, comparison operators and a fixed set of
// named functions and constants. Anything else is a lex error, so no
// user-authored text can reach evaluation with an unknown identifier.

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
	tokComma
	tokLT
	tokGT
	tokLE
	tokGE
	tokEQ
	tokNE
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) lexAll() ([]token, error) {
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	start := l.pos
	c := l.input[l.pos]

	switch {
	case c >= '0' && c <= '9' || c == '.':
		return l.lexNumber(start)
	case isIdentStart(c):
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.input[start:l.pos], pos: start}, nil
	}

	l.pos++
	switch c {
	case '+':
		return token{kind: tokPlus, text: "+", pos: start}, nil
	case '-':
		return token{kind: tokMinus, text: "-", pos: start}, nil
	case '*':
		return token{kind: tokStar, text: "*", pos: start}, nil
	case '/':
		return token{kind: tokSlash, text: "/", pos: start}, nil
	case '(':
		return token{kind: tokLParen, text: "(", pos: start}, nil
	case ')':
		return token{kind: tokRParen, text: ")", pos: start}, nil
	case ',':
		return token{kind: tokComma, text: ",", pos: start}, nil
	case '<':
		if l.peek() == '=' {
			l.pos++
			return token{kind: tokLE, text: "<=", pos: start}, nil
		}
		if l.peek() == '>' {
			l.pos++
			return token{kind: tokNE, text: "<>", pos: start}, nil
		}
		return token{kind: tokLT, text: "<", pos: start}, nil
	case '>':
		if l.peek() == '=' {
			l.pos++
			return token{kind: tokGE, text: ">=", pos: start}, nil
		}
		return token{kind: tokGT, text: ">", pos: start}, nil
	case '=':
		if l.peek() == '=' {
			l.pos++
			return token{kind: tokEQ, text: "==", pos: start}, nil
		}
		return token{kind: tokEQ, text: "=", pos: start}, nil
	case '!':
		if l.peek() == '=' {
			l.pos++
			return token{kind: tokNE, text: "!=", pos: start}, nil
		}
	}
	return token{}, fmt.Errorf("disallowed character %q at position %d", string(c), start)
}

func (l *lexer) lexNumber(start int) (token, error) {
	sawDot := false
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		if c == '.' {
			if sawDot {
				return token{}, fmt.Errorf("malformed number at position %d", start)
			}
			sawDot = true
			l.pos++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		l.pos++
	}
	text := l.input[start:l.pos]
	if text == "." {
		return token{}, fmt.Errorf("malformed number at position %d", start)
	}
	num, err := parseNumber(text)
	if err != nil {
		return token{}, fmt.Errorf("malformed number %q at position %d", text, start)
	}
	return token{kind: tokNumber, text: text, num: num, pos: start}, nil
}

func (l *lexer) peek() byte {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return 0
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

func parseNumber(text string) (float64, error) {
	// The lexer only ever feeds digits and one dot through here; strconv's
	// wider syntax (hex, exponents) is unreachable.
	if strings.HasSuffix(text, ".") {
		text += "0"
	}
	return strconv.ParseFloat(text, 64)
}
