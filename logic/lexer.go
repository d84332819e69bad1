package logic

import "fmt"

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Lex scans input into a token sequence. It matches maximal runs of
// alphabetic characters, classifying each run as a keyword or an atom, and
// the two parenthesis characters; every other character only separates
// tokens.
//
// Two adjacency rules are enforced here rather than in the parser, because
// they are properties of the raw word sequence: "then" must close an "if" or
// "iff" opened earlier in the same input, and two atoms may not follow each
// other with no operator in between. Either violation aborts the scan with a
// *LexError.
func Lex(input string) (Tokens, error) {
	var toks Tokens
	open := 0 // conditionals opened by if/iff and not yet closed by then
	lastWasAtom := false
	for i := 0; i < len(input); {
		c := input[i]
		switch {
		case c == '(':
			toks = append(toks, Token{Kind: KindLParen})
			i++
			lastWasAtom = false
		case c == ')':
			toks = append(toks, Token{Kind: KindRParen})
			i++
			lastWasAtom = false
		case isAlpha(c):
			start := i
			for i < len(input) && isAlpha(input[i]) {
				i++
			}
			word := input[start:i]
			kind, isKeyword := keywords[word]
			if !isKeyword {
				if lastWasAtom {
					return nil, &LexError{Pos: i, Msg: fmt.Sprintf("missing operator between atoms before %q", word)}
				}
				toks = append(toks, Token{Kind: KindAtom, Text: word})
				lastWasAtom = true
				continue
			}
			switch kind {
			case KindIf, KindIff:
				open++
			case KindThen:
				if open == 0 {
					return nil, &LexError{Pos: i, Msg: `"then" without a preceding "if" or "iff"`}
				}
				open--
			}
			toks = append(toks, Token{Kind: kind})
			lastWasAtom = false
		default:
			i++ // separator
		}
	}
	return toks, nil
}
