package main

import (
	"fmt"
	"strings"

	"github.com/db47h/apm/decimal"
)

// eval parses and evaluates a single arithmetic expression over Decimal
// literals. Grammar:
//
//	expr   = term (("+" | "-") term)*
//	term   = unary (("*" | "/" | "%") unary)*
//	unary  = ("-" | "+")? atom
//	atom   = number | "(" expr ")"
//
// '/' is always the binary division operator here, so "1/3" reaches
// decimal via two atoms and a Div rather than decimal.NewString parsing a
// single rational literal — the result is identical either way. A number
// atom is any other token NewString accepts: a decimal literal, a
// radix-prefixed whole literal, a plain integer, or a symbolic sentinel.
// Malformed atom text yields a Decimal Undef rather than an error,
// matching the library's no-panic contract; eval itself only returns an
// error for syntactically unparseable expressions (unbalanced parens,
// stray tokens).
func eval(expr string) (*decimal.Decimal, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	v := p.parseExpr()
	if p.err != nil {
		return nil, p.err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected token %q", p.toks[p.pos])
	}
	return v, nil
}

type parser struct {
	toks []string
	pos  int
	err  error
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) parseExpr() *decimal.Decimal {
	v := p.parseTerm()
	for {
		switch p.peek() {
		case "+":
			p.next()
			v = new(decimal.Decimal).Add(v, p.parseTerm())
		case "-":
			p.next()
			v = new(decimal.Decimal).Sub(v, p.parseTerm())
		default:
			return v
		}
	}
}

func (p *parser) parseTerm() *decimal.Decimal {
	v := p.parseUnary()
	for {
		switch p.peek() {
		case "*":
			p.next()
			v = new(decimal.Decimal).Mul(v, p.parseUnary())
		case "/":
			p.next()
			v = new(decimal.Decimal).Div(v, p.parseUnary())
		case "%":
			p.next()
			v = new(decimal.Decimal).Mod(v, p.parseUnary())
		default:
			return v
		}
	}
}

func (p *parser) parseUnary() *decimal.Decimal {
	switch p.peek() {
	case "-":
		p.next()
		return new(decimal.Decimal).Neg(p.parseUnary())
	case "+":
		p.next()
		return p.parseUnary()
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseAtom() *decimal.Decimal {
	t := p.next()
	if t == "" {
		p.err = fmt.Errorf("unexpected end of expression")
		return decimal.Undef()
	}
	if t == "(" {
		v := p.parseExpr()
		if p.peek() != ")" {
			p.err = fmt.Errorf("missing closing parenthesis")
			return v
		}
		p.next()
		return v
	}
	return decimal.NewString(t)
}

// tokenize splits expr into operator/paren/number tokens.
func tokenize(expr string) ([]string, error) {
	var toks []string
	runes := []rune(expr)
	i, n := 0, len(runes)
	for i < n {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case strings.ContainsRune("+-*/%()", c):
			// A leading +/- or one following another operator/paren is a
			// unary sign glued to the next number, not a binary operator.
			if (c == '+' || c == '-') && startsNumber(toks) {
				j := scanNumber(runes, i)
				toks = append(toks, string(runes[i:j]))
				i = j
				continue
			}
			toks = append(toks, string(c))
			i++
		default:
			j := scanNumber(runes, i)
			if j == i {
				return nil, fmt.Errorf("unexpected character %q at %d", c, i)
			}
			toks = append(toks, string(runes[i:j]))
			i = j
		}
	}
	return toks, nil
}

// startsNumber reports whether a +/- at the current position should be
// read as part of a number literal rather than as a binary operator: true
// at the start of the expression or right after another operator or "(".
func startsNumber(toks []string) bool {
	if len(toks) == 0 {
		return true
	}
	last := toks[len(toks)-1]
	return last == "(" || (len(last) == 1 && strings.ContainsAny(last, "+-*/%"))
}

// scanNumber consumes a number literal starting at i: an optional sign
// followed by digits/letters/. (decimal, radix-prefixed, or integer
// literals), stopping at the next operator, paren, or space.
func scanNumber(runes []rune, i int) int {
	n := len(runes)
	j := i
	if j < n && (runes[j] == '+' || runes[j] == '-') {
		j++
	}
	for j < n && !strings.ContainsRune("+-*/%() \t", runes[j]) {
		j++
	}
	return j
}
