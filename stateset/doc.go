// Package stateset implements Set, an ordered set of LTS states.
//
// Set supports the operations the evaluators need — union, intersection,
// equality, and membership — with equality in time proportional to set
// size and a deterministic ascending iteration order. Keeping elements
// sorted gives both properties directly; a hash-based set would need an
// order-agnostic equality check instead.
package stateset
