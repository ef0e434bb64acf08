package eval

import (
	"fmt"

	"github.com/foo-jin/mucalc/env"
	"github.com/foo-jin/mucalc/formula"
	"github.com/foo-jin/mucalc/lts"
	"github.com/foo-jin/mucalc/stateset"
)

// Naive evaluates f over l, re-initializing every fixpoint variable on
// every entry to its binder. It resets the package's iteration counter
// before running; call Iterations afterward to read the count.
func Naive(l *lts.Lts, f formula.Formula) stateset.Set {
	resetIterations()
	return evalNaive(l, f, env.New())
}

func evalNaive(l *lts.Lts, f formula.Formula, e env.Env) stateset.Set {
	switch g := f.(type) {
	case formula.True:
		return l.States()
	case formula.False:
		return stateset.Empty()
	case formula.Var:
		return e.Get(g.Name)
	case formula.And:
		return stateset.Intersect(evalNaive(l, g.F1, e), evalNaive(l, g.F2, e))
	case formula.Or:
		return stateset.Union(evalNaive(l, g.F1, e), evalNaive(l, g.F2, e))
	case formula.Diamond:
		return diamond(l, g.Action, evalNaive(l, g.F, e))
	case formula.Box:
		return box(l, g.Action, evalNaive(l, g.F, e))
	case formula.Mu:
		e.Set(g.Var, stateset.Empty())
		return naiveFixpoint(l, g.Var, g.F, e)
	case formula.Nu:
		e.Set(g.Var, l.States())
		return naiveFixpoint(l, g.Var, g.F, e)
	default:
		panic(fmt.Sprintf("eval: unhandled formula node %T", f))
	}
}

func naiveFixpoint(l *lts.Lts, v rune, body formula.Formula, e env.Env) stateset.Set {
	for {
		next := evalNaive(l, body, e)
		tickIteration()
		prev := e.Set(v, next)
		if stateset.Equal(next, prev) {
			return next
		}
	}
}
