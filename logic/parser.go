package logic

import (
	"fmt"
	"strings"
)

// The grammar, from the token sequence's point of view:
//
//	expr    := primary ( ("and" | "or") primary )*
//	primary := ATOM
//	         | "not" primary
//	         | "(" expr ")"
//	         | ("if" | "iff") expr "then" expr
//
// "and" and "or" share one precedence level and fold to the left in
// encounter order. The conditional is a primary, so the consequent after
// "then" is a full expr and may itself contain "and"/"or" chains.
type parser struct {
	toks Tokens
	pos  int
}

// Parse consumes a lexed token sequence and returns the formula tree.
// It fails with a *SyntaxError when the grammar is violated or when tokens
// remain after a complete formula.
func Parse(toks Tokens) (Node, error) {
	p := &parser{toks: toks}
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf("unexpected %q after end of formula", p.toks[p.pos])}
	}
	return f, nil
}

// ParseString lexes and parses input in one step.
func ParseString(input string) (Node, error) {
	toks, err := Lex(input)
	if err != nil {
		return nil, err
	}
	return Parse(toks)
}

// ParseKB parses one comma-separated knowledge-base line. A malformed
// element fails the whole call, naming the offending formula so batch
// callers can report it.
func ParseKB(line string) ([]Node, error) {
	parts := strings.Split(line, ",")
	kb := make([]Node, 0, len(parts))
	for i, part := range parts {
		f, err := ParseString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("formula %d %q: %w", i+1, strings.TrimSpace(part), err)
		}
		kb = append(kb, f)
	}
	return kb, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (Token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.Kind != KindAnd && t.Kind != KindOr) {
			return left, nil
		}
		p.pos++
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if t.Kind == KindAnd {
			left = And{L: left, R: right}
		} else {
			left = Or{L: left, R: right}
		}
	}
}

func (p *parser) parsePrimary() (Node, error) {
	t, ok := p.next()
	if !ok {
		return nil, &SyntaxError{Pos: p.pos, Msg: "expected expression"}
	}
	switch t.Kind {
	case KindAtom:
		return Atom{Name: t.Text}, nil
	case KindNot:
		x, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return Not{X: x}, nil
	case KindLParen:
		f, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if t, ok := p.peek(); !ok || t.Kind != KindRParen {
			return nil, &SyntaxError{Pos: p.pos, Msg: "missing closing parenthesis"}
		}
		p.pos++
		return f, nil
	case KindIf, KindIff:
		return p.parseConditional(t.Kind)
	case KindThen:
		return nil, &SyntaxError{Pos: p.pos - 1, Msg: `unexpected "then" without preceding "if"`}
	default:
		return nil, &SyntaxError{Pos: p.pos - 1, Msg: fmt.Sprintf("expected expression, found %q", t)}
	}
}

// parseConditional parses "cond then cons" after the opening keyword has
// been consumed. "if" builds a material implication, "iff" a biconditional.
func (p *parser) parseConditional(kw Kind) (Node, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t, ok := p.next(); !ok || t.Kind != KindThen {
		return nil, &SyntaxError{Pos: p.pos - 1, Msg: fmt.Sprintf(`missing "then" after %q`, kindText[kw])}
	}
	cons, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if kw == KindIff {
		return Iff{L: cond, R: cons}, nil
	}
	return If{Cond: cond, Cons: cons}, nil
}
