package eval

import (
	"github.com/foo-jin/mucalc/lts"
	"github.com/foo-jin/mucalc/stateset"
)

// diamond computes { s | exists t. s --action--> t and t in inner }.
func diamond(l *lts.Lts, action string, inner stateset.Set) stateset.Set {
	var out []stateset.State
	for _, step := range l.StepTransitions(action) {
		for _, t := range step.Targets {
			if inner.Contains(t) {
				out = append(out, step.State)
				break
			}
		}
	}
	return stateset.Of(out...)
}

// box computes { s | forall t. s --action--> t implies t in inner }.
// A state with no action-successors satisfies this vacuously.
func box(l *lts.Lts, action string, inner stateset.Set) stateset.Set {
	var out []stateset.State
	for _, step := range l.StepTransitions(action) {
		ok := true
		for _, t := range step.Targets {
			if !inner.Contains(t) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, step.State)
		}
	}
	return stateset.Of(out...)
}
