package metrics

import "github.com/foo-jin/mucalc/formula"

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}

// Nesting returns ND(f): the maximum number of fixed-point binders on any
// root-to-leaf path of f.
func Nesting(f formula.Formula) uint16 {
	switch g := f.(type) {
	case formula.False, formula.True, formula.Var:
		return 0
	case formula.Diamond:
		return Nesting(g.F)
	case formula.Box:
		return Nesting(g.F)
	case formula.And:
		return max16(Nesting(g.F1), Nesting(g.F2))
	case formula.Or:
		return max16(Nesting(g.F1), Nesting(g.F2))
	case formula.Mu:
		return 1 + Nesting(g.F)
	case formula.Nu:
		return 1 + Nesting(g.F)
	default:
		return 0
	}
}

// Alternation returns AD(f): the maximum number of μ/ν alternations on
// any path of nested binders in f.
func Alternation(f formula.Formula) uint16 {
	switch g := f.(type) {
	case formula.False, formula.True, formula.Var:
		return 0
	case formula.Diamond:
		return Alternation(g.F)
	case formula.Box:
		return Alternation(g.F)
	case formula.And:
		return max16(Alternation(g.F1), Alternation(g.F2))
	case formula.Or:
		return max16(Alternation(g.F1), Alternation(g.F2))
	case formula.Mu:
		return alternationBinder(g.F, formula.IsNu)
	case formula.Nu:
		return alternationBinder(g.F, formula.IsMu)
	default:
		return 0
	}
}

// alternationBinder computes max(1, AD(body), 1+max{AD(h) | h subformula
// of body, opposite(h)}) shared by the Mu and Nu cases of Alternation.
func alternationBinder(body formula.Formula, opposite func(formula.Formula) bool) uint16 {
	best := max16(1, Alternation(body))
	witness := uint16(0)
	for _, h := range formula.Subformulas(body) {
		if opposite(h) {
			witness = max16(witness, Alternation(h))
		}
	}
	return max16(best, 1+witness)
}

// DependentAlternation returns dAD(f): as Alternation, but an inner
// binder of opposite polarity only counts as an alternation if it
// actually uses the outer variable.
func DependentAlternation(f formula.Formula) uint16 {
	switch g := f.(type) {
	case formula.False, formula.True, formula.Var:
		return 0
	case formula.Diamond:
		return DependentAlternation(g.F)
	case formula.Box:
		return DependentAlternation(g.F)
	case formula.And:
		return max16(DependentAlternation(g.F1), DependentAlternation(g.F2))
	case formula.Or:
		return max16(DependentAlternation(g.F1), DependentAlternation(g.F2))
	case formula.Mu:
		return dependentBinder(g.Var, g.F, formula.IsNu)
	case formula.Nu:
		return dependentBinder(g.Var, g.F, formula.IsMu)
	default:
		return 0
	}
}

func dependentBinder(outer rune, body formula.Formula, opposite func(formula.Formula) bool) uint16 {
	best := max16(1, DependentAlternation(body))
	witness := uint16(0)
	for _, h := range formula.Subformulas(body) {
		if !opposite(h) {
			continue
		}
		_, used := formula.Variables(h)
		if _, ok := used[outer]; !ok {
			continue
		}
		witness = max16(witness, DependentAlternation(h))
	}
	return max16(best, 1+witness)
}
