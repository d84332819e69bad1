package logic

import "strings"

// Kind is the lexical class of a Token.
type Kind int

const (
	KindAtom Kind = iota
	KindNot
	KindAnd
	KindOr
	KindIf
	KindIff
	KindThen
	KindLParen
	KindRParen
)

// keywords maps the reserved words of the formula language to their kinds.
// Matching is case-sensitive: "Not" is an atom, "not" is a negation.
var keywords = map[string]Kind{
	"not":  KindNot,
	"and":  KindAnd,
	"or":   KindOr,
	"if":   KindIf,
	"iff":  KindIff,
	"then": KindThen,
}

var kindText = map[Kind]string{
	KindNot:    "not",
	KindAnd:    "and",
	KindOr:     "or",
	KindIf:     "if",
	KindIff:    "iff",
	KindThen:   "then",
	KindLParen: "(",
	KindRParen: ")",
}

// A Token is one lexical unit of a formula. Text is set for atoms only.
type Token struct {
	Kind Kind
	Text string
}

// String returns the token as it appears in formula text, so that a token
// sequence can be re-serialized and lexed again.
func (t Token) String() string {
	if t.Kind == KindAtom {
		return t.Text
	}
	return kindText[t.Kind]
}

// Tokens is a fully materialized token sequence, as produced by Lex.
type Tokens []Token

// String re-serializes the sequence as formula text. Lexing the result
// yields the same sequence back.
func (ts Tokens) String() string {
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.String()
	}
	return strings.Join(strs, " ")
}
