/*
File    : tron/resolver/resolver.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package resolver is a static pre-pass over the parsed AST that computes,
// for every variable reference and assignment, how many lexical scope
// hops separate it from its declaring frame. The output is a map from AST
// node ID to depth; a reference absent from the map is global.
package resolver

import (
	"fmt"

	"github.com/tron-lang/tron/parser"
)

// Resolver walks a Program once, maintaining a stack of block/function
// scopes (innermost last). Resolve never mutates the AST; it only
// produces the node_id -> depth side table the evaluator consults.
type Resolver struct {
	scopes    []map[string]bool
	depths    map[int]int
	errors    []string
	funcDepth int
	loopDepth int
}

// New creates an empty Resolver.
func New() *Resolver {
	return &Resolver{depths: make(map[int]int)}
}

// Resolve walks prog and returns the node_id -> depth map alongside any
// resolution errors. The top level starts with an empty scope stack, so
// top-level references are left globalized, matching the evaluator's
// global frame.
func Resolve(prog *parser.Program) (map[int]int, []string) {
	r := New()
	r.resolveStmts(prog.Statements)
	return r.depths, r.errors
}

func (r *Resolver) errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the innermost
// scope. A no-op at the top level.
func (r *Resolver) declare(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

// resolveLocal records the hop count from node to the scope declaring
// name, innermost-first. If no scope declares it, the reference is left
// globalized (no map entry).
func (r *Resolver) resolveLocal(node parser.Node, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.depths[node.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

// isSelfInitRead reports whether name refers to itself mid-declaration in
// the innermost scope (declared but not yet defined).
func (r *Resolver) isSelfInitRead(name string) bool {
	if len(r.scopes) == 0 {
		return false
	}
	defined, ok := r.scopes[len(r.scopes)-1][name]
	return ok && !defined
}

func (r *Resolver) resolveFunction(paramNames []string, body []parser.Stmt) {
	r.funcDepth++
	r.beginScope()
	for _, name := range paramNames {
		r.declare(name)
		r.define(name)
	}
	r.resolveStmts(body)
	r.endScope()
	r.funcDepth--
}
