// Package eval evaluates modal μ-calculus formulas over a finite lts.Lts,
// producing the denotation ⟦f⟧ρ ⊆ S: the set of states satisfying f
// under environment ρ.
//
// Two evaluators are provided with identical semantics: Naive
// re-initializes every fixpoint variable on every entry to its binder;
// Improved (Emerson–Lei) pre-seeds once and selectively resets only open,
// opposite-polarity nested binders on re-entry. Both report the number
// of fixpoint iterations performed via Iterations, read after the
// top-level call returns.
package eval
