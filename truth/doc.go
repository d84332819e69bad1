// Package truth decides satisfiability and entailment of parsed formulas by
// exhaustive enumeration of truth assignments.
//
// The enumeration is deliberately brute force: for n atoms it materializes
// all 2^n assignments and evaluates every formula under each of them. There
// is no unit propagation, clause learning or pruning of any kind, so the
// package is meant for the small atom universes of hand-written formulas.
// The atom count is bounded (MaxAtoms by default) and exceeding the bound
// is a *LimitError, never an attempt to allocate 2^n assignments anyway.
package truth
