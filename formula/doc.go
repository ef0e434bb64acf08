// Package formula defines the modal μ-calculus formula AST used throughout
// mucalc: a tagged-variant tree with Boolean connectives, action-indexed
// modalities, and least/greatest fixed-point binders.
//
// Nine concrete types implement the Formula interface: False, True, Var,
// And, Or, Diamond, Box, Mu, Nu. Go has no closed sum types, so Formula
// carries a private marker method and callers recurse with a type switch —
// every function in this module, and every consumer in metrics/ and eval/,
// follows that shape.
//
// Structural constraints expected of well-formed input (not enforced here;
// muparse rejects unbound variables and shadowing at read time):
//
//   - every Var(X) occurs under a binder of X
//   - each bound variable name is unique within its binder's subtree
//   - formulas are monotone (the grammar has no negation, so this holds
//     automatically)
package formula
