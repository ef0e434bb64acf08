package eval

import "sync/atomic"

// iterations is the global fixpoint iteration counter: the only state
// shared across an evaluation, updated with atomic read-modify-write
// and observed only after the top-level call returns.
var iterations uint64

func resetIterations() {
	atomic.StoreUint64(&iterations, 0)
}

func tickIteration() {
	atomic.AddUint64(&iterations, 1)
}

// Iterations returns the number of μ/ν-binder iterations performed by
// the most recently completed top-level Naive or Improved call on this
// package. It is reset at the start of each such call.
func Iterations() uint64 {
	return atomic.LoadUint64(&iterations)
}
