// Package mucalc is a model checker for a fragment of the modal μ-calculus
// over finite labeled transition systems (LTS).
//
// Given a finite LTS and a closed formula built from Boolean connectives,
// action-indexed modalities, and least/greatest fixed-point binders, mucalc
// computes the set of states satisfying the formula and reports whether the
// LTS's initial state is a member.
//
// The module is organized as a set of small, composable packages:
//
//	formula/  — the formula AST, subformula iterator, and free/bound variable analysis
//	metrics/  — nesting depth, alternation depth, and dependent alternation depth
//	stateset/ — an ordered set of LTS states with deterministic iteration
//	lts/      — the LTS store and the Aldebaran (.aut) text format reader
//	muparse/  — the μ-calculus formula grammar reader
//	env/      — the fixed-point variable environment threaded through evaluation
//	eval/     — the naive and Emerson–Lei improved evaluators
//	cmd/mucheck — the command-line front end
//
// See SPEC_FULL.md for the full specification and DESIGN.md for the design
// rationale and grounding notes.
package mucalc
