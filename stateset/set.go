package stateset

import (
	"fmt"
	"sort"
	"strings"
)

// State identifies an LTS state. uint32 is wide enough for generated or
// composed transition systems beyond what a uint16 header field could
// address, while staying cheap to use as a map key.
type State uint32

// Set is an ordered, deduplicated collection of States, always iterated
// in ascending order.
type Set struct {
	states []State
}

// Empty returns the empty Set.
func Empty() Set {
	return Set{}
}

// Of builds a Set from the given states, deduplicating and sorting them.
func Of(states ...State) Set {
	s := Set{states: append([]State(nil), states...)}
	s.normalize()
	return s
}

func (s *Set) normalize() {
	sort.Slice(s.states, func(i, j int) bool { return s.states[i] < s.states[j] })
	out := s.states[:0]
	var prev State
	havePrev := false
	for _, st := range s.states {
		if havePrev && st == prev {
			continue
		}
		out = append(out, st)
		prev, havePrev = st, true
	}
	s.states = out
}

// Len returns the number of elements in s.
func (s Set) Len() int { return len(s.states) }

// Contains reports whether st is a member of s.
func (s Set) Contains(st State) bool {
	i := sort.Search(len(s.states), func(i int) bool { return s.states[i] >= st })
	return i < len(s.states) && s.states[i] == st
}

// Slice returns the elements of s in ascending order. Callers must not
// mutate the returned slice.
func (s Set) Slice() []State {
	return s.states
}

// Add returns a new Set containing s's elements plus st.
func (s Set) Add(st State) Set {
	return Union(s, Of(st))
}

// Equal reports whether s and other contain exactly the same states.
// O(n) after an O(1) length check, since both sides are kept sorted.
func Equal(s, other Set) bool {
	if len(s.states) != len(other.states) {
		return false
	}
	for i, st := range s.states {
		if other.states[i] != st {
			return false
		}
	}
	return true
}

// Union returns the set union of a and b.
func Union(a, b Set) Set {
	out := make([]State, 0, len(a.states)+len(b.states))
	i, j := 0, 0
	for i < len(a.states) && j < len(b.states) {
		switch {
		case a.states[i] < b.states[j]:
			out = append(out, a.states[i])
			i++
		case a.states[i] > b.states[j]:
			out = append(out, b.states[j])
			j++
		default:
			out = append(out, a.states[i])
			i++
			j++
		}
	}
	out = append(out, a.states[i:]...)
	out = append(out, b.states[j:]...)
	return Set{states: out}
}

// Intersect returns the set intersection of a and b.
func Intersect(a, b Set) Set {
	cap := len(a.states)
	if len(b.states) < cap {
		cap = len(b.states)
	}
	out := make([]State, 0, cap)
	i, j := 0, 0
	for i < len(a.states) && j < len(b.states) {
		switch {
		case a.states[i] < b.states[j]:
			i++
		case a.states[i] > b.states[j]:
			j++
		default:
			out = append(out, a.states[i])
			i++
			j++
		}
	}
	return Set{states: out}
}

// String renders s as "{1, 2, 3}".
func (s Set) String() string {
	parts := make([]string, len(s.states))
	for i, st := range s.states {
		parts[i] = fmt.Sprintf("%d", st)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
