package interp

import (
	"fmt"

	"github.com/cwbudde/go-lbpl/internal/value"
)

// Environment is a name→value scope with an optional parent, forming the
// chained scope model of spec.md §3.6. Environments are reference types:
// closures and classes pin a *Environment rather than copy it, which is
// exactly what lets a function body see updates made to its captured
// outer scope after the closure was created.
//
// Grounded on the teacher's interp/runtime.Environment, simplified: LBPL
// is case-sensitive, so the store is a plain map rather than an
// ident.Map.
type Environment struct {
	store map[string]value.Value
	outer *Environment
}

// NewEnvironment creates a root environment with no enclosing scope,
// used for the global scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]value.Value)}
}

// NewEnclosedEnvironment creates a scope nested inside outer, used for
// function bodies, blocks, for-loop headers, and method-binding.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]value.Value), outer: outer}
}

// Define always inserts/overwrites in this environment, never walking to
// an outer scope -- used for `let`, parameter binding, and `this`/`super`.
func (e *Environment) Define(name string, v value.Value) {
	e.store[name] = v
}

// Get looks up name, walking outward through enclosing scopes. Used only
// for a variable reference the resolver could not bind to a depth (a
// global), per spec.md §3.6.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.Get(name)
	}
	return nil, false
}

// Assign walks outward until name is found and overwrites it there; it
// reports false if name is undefined in the whole chain, which the
// caller turns into a runtime "undefined name" error.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.store[name]; ok {
		e.store[name] = v
		return true
	}
	if e.outer != nil {
		return e.outer.Assign(name, v)
	}
	return false
}

// ancestor walks exactly depth parents outward -- the depth the
// resolver computed for a given expression.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		if env.outer == nil {
			panic(fmt.Sprintf("interp: environment has no ancestor at depth %d", depth))
		}
		env = env.outer
	}
	return env
}

// GetAt reads name from the environment exactly depth parents outward,
// the fast path the resolver enables for every locally-bound reference.
func (e *Environment) GetAt(depth int, name string) (value.Value, bool) {
	v, ok := e.ancestor(depth).store[name]
	return v, ok
}

// AssignAt is the write counterpart of GetAt.
func (e *Environment) AssignAt(depth int, name string, v value.Value) {
	e.ancestor(depth).store[name] = v
}
