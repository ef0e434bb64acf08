// Package lts implements the finite labeled transition system ⟨S, s0, Σ,
// →⟩ that mucalc formulas are evaluated over, plus a reader for the
// Aldebaran (.aut) text format.
//
// An Lts is built once (via Parse, or by direct construction for tests)
// and is read-only for the remainder of its lifetime — evaluation never
// mutates it, so Lts carries no locks.
//
// Errors:
//
//	ParseError — the input text did not match the Aldebaran grammar.
package lts
