/*
File    : tron/environment/environment.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package environment implements the cactus-stack of variable frames the
// evaluator runs against: a chain of maps linked by Parent pointers, with
// depth-indexed lookup driven by the resolver's node_id -> depth map.
package environment

import (
	"fmt"

	"github.com/tron-lang/tron/values"
)

// Environment is one frame of the variable chain. Parent frames are
// shared by reference across every child and every closure that captured
// them, so a write to a captured variable through one closure is visible
// through all aliases — the specified sharing behavior.
type Environment struct {
	Vars   map[string]values.Value
	Parent *Environment
}

// New creates a root environment with no parent — the designated global
// frame.
func New() *Environment {
	return &Environment{Vars: make(map[string]values.Value)}
}

// Enclose returns a child environment sharing e as its parent.
func (e *Environment) Enclose() *Environment {
	return &Environment{Vars: make(map[string]values.Value), Parent: e}
}

// Define installs name in the current frame, overwriting any existing
// binding in that frame (but not shadowed bindings in ancestor frames).
func (e *Environment) Define(name string, val values.Value) {
	e.Vars[name] = val
}

// ancestor walks up depth parent links.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		if env.Parent == nil {
			return nil
		}
		env = env.Parent
	}
	return env
}

// Global walks to the root of the chain.
func (e *Environment) Global() *Environment {
	env := e
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// GetAt fetches name from the ancestor exactly depth hops away.
func (e *Environment) GetAt(depth int, name string) (values.Value, bool) {
	env := e.ancestor(depth)
	if env == nil {
		return nil, false
	}
	v, ok := env.Vars[name]
	return v, ok
}

// AssignAt writes name into the ancestor exactly depth hops away. It fails
// if the name isn't already bound there.
func (e *Environment) AssignAt(depth int, name string, val values.Value) bool {
	env := e.ancestor(depth)
	if env == nil {
		return false
	}
	if _, ok := env.Vars[name]; !ok {
		return false
	}
	env.Vars[name] = val
	return true
}

// Get searches from the innermost frame outward and finally the global
// frame, used when the resolver left a reference globalized.
func (e *Environment) Get(name string) (values.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.Vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign writes name into the frame that defines it, searching from
// innermost outward. It fails if no frame in the chain defines the name.
func (e *Environment) Assign(name string, val values.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.Vars[name]; ok {
			env.Vars[name] = val
			return true
		}
	}
	return false
}

// UndefinedVariableError formats the standard "no such variable" message.
func UndefinedVariableError(name string) error {
	return fmt.Errorf("undefined variable '%s'", name)
}
