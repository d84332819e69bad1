package logic

import "fmt"

// A LexError reports malformed input detected while scanning a formula.
// Pos is the byte offset just past the offending word.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// A SyntaxError reports a grammar violation detected while parsing.
// Pos is the index of the offending token, or len(tokens) when the input
// ended too early.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %d: %s", e.Pos, e.Msg)
}
