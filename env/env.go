package env

import (
	"fmt"

	"github.com/foo-jin/mucalc/stateset"
)

// Env is the mutable map ρ: VarName -> 𝒫(S). It is owned exclusively by
// one evaluation; mutation is strictly nested with the recursive
// descent and is never observed across goroutines.
type Env map[rune]stateset.Set

// New returns an empty environment.
func New() Env {
	return make(Env)
}

// Get returns ρ[name]. Every free variable reached during evaluation must
// already be bound — muparse rejects formulas with unbound variables at
// parse time, so an unbound read here is a program error, not a user
// error.
func (e Env) Get(name rune) stateset.Set {
	v, ok := e[name]
	if !ok {
		panic(fmt.Sprintf("env: read of unbound variable %q", name))
	}
	return v
}

// Set performs ρ[name] <- v, returning the previous binding (the zero
// Set if name was unbound).
func (e Env) Set(name rune, v stateset.Set) stateset.Set {
	prev := e[name]
	e[name] = v
	return prev
}
