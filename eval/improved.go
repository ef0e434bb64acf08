package eval

import (
	"fmt"

	"github.com/foo-jin/mucalc/env"
	"github.com/foo-jin/mucalc/formula"
	"github.com/foo-jin/mucalc/lts"
	"github.com/foo-jin/mucalc/stateset"
)

// Improved evaluates f over l using the Emerson–Lei algorithm: every
// fixpoint variable is pre-seeded once, and on re-entry to a binder only
// open, opposite-polarity nested binders are reset. It resets the
// package's iteration counter before running; call Iterations
// afterward to read the count.
func Improved(l *lts.Lts, f formula.Formula) stateset.Set {
	resetIterations()
	e := env.New()
	preSeed(l, f, e)
	return evalImproved(l, f, e, nil)
}

func preSeed(l *lts.Lts, f formula.Formula, e env.Env) {
	for _, sub := range formula.Subformulas(f) {
		switch g := sub.(type) {
		case formula.Mu:
			e.Set(g.Var, stateset.Empty())
		case formula.Nu:
			e.Set(g.Var, l.States())
		}
	}
}

func evalImproved(l *lts.Lts, f formula.Formula, e env.Env, prevFixpoint formula.Formula) stateset.Set {
	switch g := f.(type) {
	case formula.True:
		return l.States()
	case formula.False:
		return stateset.Empty()
	case formula.Var:
		return e.Get(g.Name)
	case formula.And:
		return stateset.Intersect(evalImproved(l, g.F1, e, prevFixpoint), evalImproved(l, g.F2, e, prevFixpoint))
	case formula.Or:
		return stateset.Union(evalImproved(l, g.F1, e, prevFixpoint), evalImproved(l, g.F2, e, prevFixpoint))
	case formula.Diamond:
		return diamond(l, g.Action, evalImproved(l, g.F, e, prevFixpoint))
	case formula.Box:
		return box(l, g.Action, evalImproved(l, g.F, e, prevFixpoint))
	case formula.Mu:
		return improvedFixpoint(l, f, g.Var, g.F, e, prevFixpoint, true)
	case formula.Nu:
		return improvedFixpoint(l, f, g.Var, g.F, e, prevFixpoint, false)
	default:
		panic(fmt.Sprintf("eval: unhandled formula node %T", f))
	}
}

func improvedFixpoint(l *lts.Lts, self formula.Formula, v rune, body formula.Formula, e env.Env, prevFixpoint formula.Formula, isMu bool) stateset.Set {
	if oppositePolarity(prevFixpoint, isMu) {
		resetOpen(l, self, e)
	}
	for {
		next := evalImproved(l, body, e, self)
		tickIteration()
		prev := e.Set(v, next)
		if stateset.Equal(next, prev) {
			return next
		}
	}
}

func oppositePolarity(prevFixpoint formula.Formula, isMu bool) bool {
	switch prevFixpoint.(type) {
	case formula.Mu:
		return !isMu
	case formula.Nu:
		return isMu
	default:
		return false
	}
}

// resetOpen re-initializes every open, same-polarity-as-self fixpoint
// variable reachable in self's subtree, self included: self's own
// variable is reset only when self itself is open.
// Calling it on a node that is not itself a Mu or Nu is a program error.
func resetOpen(l *lts.Lts, self formula.Formula, e env.Env) {
	isMu := formula.IsMu(self)
	isNu := formula.IsNu(self)
	if !isMu && !isNu {
		panic(fmt.Sprintf("eval: resetOpen called on non-fixpoint node %T", self))
	}
	for _, h := range formula.Subformulas(self) {
		switch hh := h.(type) {
		case formula.Mu:
			if isMu && formula.IsOpen(hh) {
				e.Set(hh.Var, stateset.Empty())
			}
		case formula.Nu:
			if isNu && formula.IsOpen(hh) {
				e.Set(hh.Var, l.States())
			}
		}
	}
}
