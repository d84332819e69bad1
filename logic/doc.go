// Package logic parses ASCII propositional-logic formulas and evaluates them
// under truth assignments.
//
// Formulas are written with the keywords "not", "and", "or", "if", "iff" and
// "then", atoms being any other alphabetic word. Parentheses group
// subformulas. For instance:
//
//	if rain and not umbrella then wet
//
// "if c then e" denotes the material implication c -> e, "iff c then e" the
// biconditional c <-> e. The binary connectives "and" and "or" share a single
// precedence level and associate to the left, so "a and b or c" reads as
// "(a and b) or c". "not" binds to the single primary expression that
// follows it.
//
// Lex turns an input string into a token sequence, Parse turns a token
// sequence into a Node tree, and Eval computes a tree's truth value under a
// model. ParseString combines the first two steps.
package logic
