package lts

import "github.com/foo-jin/mucalc/stateset"

// State identifies an LTS state; re-exported from stateset so callers of
// this package rarely need to import stateset directly.
type State = stateset.State

// Label is an action name. Comparison is bytewise string equality.
type Label = string

type transKey struct {
	src    State
	action Label
}

// Lts is a finite labeled transition system: a set of states, an initial
// state, and a transition relation keyed by (source, action).
type Lts struct {
	init   State
	states stateset.Set
	trans  map[transKey][]State
}

// New builds an empty Lts with the given initial state. Callers then use
// AddEdge to populate it; Parse does this for Aldebaran text.
func New(init State) *Lts {
	return &Lts{
		init:   init,
		states: stateset.Of(init),
		trans:  make(map[transKey][]State),
	}
}

// AddEdge records a transition src --action--> dst, adding src and dst to
// the state set if new. Duplicate targets for the same (src, action) are
// permitted; their order is preserved but is not semantically relevant.
func (l *Lts) AddEdge(src State, action Label, dst State) {
	l.states = l.states.Add(src)
	l.states = l.states.Add(dst)
	key := transKey{src, action}
	l.trans[key] = append(l.trans[key], dst)
}

// States returns the set S of every state in the Lts.
func (l *Lts) States() stateset.Set {
	return l.states
}

// Init returns s0, the initial state.
func (l *Lts) Init() State {
	return l.init
}

// StepResult pairs a source state with its (possibly empty) sequence of
// action-successors.
type StepResult struct {
	State   State
	Targets []State
}

// StepTransitions returns, for every state in States() in ascending
// order, its targets reachable via action. States with no action-edge
// appear with a nil Targets slice: Box's semantics are a universal
// quantification over successors, vacuously true when there are none,
// so every state — including those with zero successors — must appear.
func (l *Lts) StepTransitions(action Label) []StepResult {
	all := l.states.Slice()
	out := make([]StepResult, len(all))
	for i, s := range all {
		out[i] = StepResult{State: s, Targets: l.trans[transKey{s, action}]}
	}
	return out
}
