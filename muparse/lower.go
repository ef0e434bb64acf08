package muparse

import (
	"fmt"

	"github.com/foo-jin/mucalc/formula"
)

// scope tracks the fixpoint variables currently in scope during
// lowering, so shadowing and unbound references can be rejected before
// a formula.Formula ever reaches the evaluator. Shadowing is rejected
// here, at parse time, because env.Env's flat map has no way to
// represent two live bindings of the same variable name.
type scope struct {
	bound map[rune]struct{}
}

func newScope() *scope {
	return &scope{bound: map[rune]struct{}{}}
}

func (s *scope) enter(name rune) error {
	if _, ok := s.bound[name]; ok {
		return fmt.Errorf("variable %q is already bound in an enclosing binder", name)
	}
	s.bound[name] = struct{}{}
	return nil
}

func (s *scope) leave(name rune) {
	delete(s.bound, name)
}

func (s *scope) has(name rune) bool {
	_, ok := s.bound[name]
	return ok
}

func lower(t *parseTree, sc *scope) (formula.Formula, error) {
	switch {
	case t.True != nil:
		return formula.True{}, nil
	case t.False != nil:
		return formula.False{}, nil
	case t.Var != nil:
		name := []rune(t.Var.Name)[0]
		if !sc.has(name) {
			return nil, fmt.Errorf("unbound variable %q", name)
		}
		return formula.Var{Name: name}, nil
	case t.Paren != nil:
		left, err := lower(t.Paren.Left, sc)
		if err != nil {
			return nil, err
		}
		right, err := lower(t.Paren.Right, sc)
		if err != nil {
			return nil, err
		}
		switch t.Paren.Op {
		case "&&":
			return formula.And{F1: left, F2: right}, nil
		case "||":
			return formula.Or{F1: left, F2: right}, nil
		default:
			return nil, fmt.Errorf("unknown binary operator %q", t.Paren.Op)
		}
	case t.Diamond != nil:
		inner, err := lower(t.Diamond.F, sc)
		if err != nil {
			return nil, err
		}
		return formula.Diamond{Action: t.Diamond.Action, F: inner}, nil
	case t.Box != nil:
		inner, err := lower(t.Box.F, sc)
		if err != nil {
			return nil, err
		}
		return formula.Box{Action: t.Box.Action, F: inner}, nil
	case t.Binder != nil:
		name := []rune(t.Binder.Var)[0]
		if err := sc.enter(name); err != nil {
			return nil, err
		}
		inner, err := lower(t.Binder.F, sc)
		sc.leave(name)
		if err != nil {
			return nil, err
		}
		switch t.Binder.Kind {
		case "mu":
			return formula.Mu{Var: name, F: inner}, nil
		case "nu":
			return formula.Nu{Var: name, F: inner}, nil
		default:
			return nil, fmt.Errorf("unknown binder keyword %q", t.Binder.Kind)
		}
	default:
		return nil, fmt.Errorf("empty parse node")
	}
}
