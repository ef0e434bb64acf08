// Package metrics computes the three complexity measures of a μ-calculus
// formula that characterize the cost class of its evaluation and guide
// the Emerson–Lei improved evaluator's reset rule:
//
//   - Nesting depth — the maximum number of Mu/Nu binders on any
//     root-to-leaf path.
//   - Alternation depth — the maximum number of μ/ν alternations on any
//     path of nested binders.
//   - Dependent alternation depth — alternation counted only when the
//     inner binder actually uses the outer variable.
//
// All three are non-negative and fit a uint16. ND ≥ AD ≥ dAD always.
package metrics
