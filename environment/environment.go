/*
File    : lumen/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements Lumen's lexically nested name-to-value
// mapping. There is no Assign: no operator in this language ever writes
// to an outer scope, and there is no const/let-type bookkeeping, since
// every binding here comes from a single, untyped `let`.
package environment

import "github.com/akashmaji946/lumen/object"

// Environment is one scope frame in the chain from innermost scope toward
// the global scope. A Function value captures a pointer to the
// Environment active at its construction, so later `let`s in that scope
// become visible to the closure too. Capture is by reference, never by
// snapshot.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates an environment nested inside outer, as happens at
// each function application: a new scope is created for the call's
// parameter bindings, enclosing the function's captured defining scope.
func NewEnclosed(outer *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), outer: outer}
}

// Get looks up name in this scope, then in each enclosing scope in turn,
// returning the first hit.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this scope only. There is no operator to
// update a binding in an outer scope; every write goes through Set on
// the innermost (currently active) Environment.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
