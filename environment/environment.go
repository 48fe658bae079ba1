/*
File    : goloxmix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements goloxmix's lexical scope chain: a linked
// list of variable bindings, each pointing at the environment it was
// nested inside of at creation time. Function closures capture a pointer
// into this chain rather than a snapshot, so later assignments to a
// captured variable are visible to the closure.
package environment

import (
	"fmt"

	"github.com/akashmaji946/goloxmix/value"
)

// UndefinedError reports a reference to, or assignment into, a name with
// no binding anywhere in the enclosing chain.
type UndefinedError struct {
	Name string
	Line int
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined variable %q", e.Name)
}

// Environment is one lexical scope: its own bindings plus a pointer to the
// scope it was opened inside of (nil at the global scope).
type Environment struct {
	enclosing *Environment
	values    map[string]value.Value
}

// New creates a top-level environment with no enclosing scope.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a scope nested inside enclosing, as every block,
// function call, and loop iteration does.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]value.Value)}
}

// Define binds name to v in this scope. Re-declaring an existing name in
// the same scope silently replaces it, matching `var x = 1; var x = 2;`
// being legal at the top level and inside a single block.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking outward from this scope to the global
// scope, returning UndefinedError if no binding is found anywhere.
func (e *Environment) Get(name string) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, &UndefinedError{Name: name}
}

// Assign mutates the nearest existing binding for name, walking outward
// the same way Get does. It never creates a new binding — assigning to an
// undeclared name is a runtime error, matching goloxmix's requirement
// that `var` is the only way to introduce a variable.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return &UndefinedError{Name: name}
}
