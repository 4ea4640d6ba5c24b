/*
File    : tron/eval/evaluator.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package eval is the tree-walking evaluator: it interprets a parsed,
// resolved Program against an environment chain, producing values and
// side effects (printing, process exit, shelling out, file import).
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tron-lang/tron/callable"
	"github.com/tron-lang/tron/environment"
	"github.com/tron-lang/tron/natives"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/resolver"
	"github.com/tron-lang/tron/values"
)

const defaultPrintPointer = " ➤ "

// Evaluator holds the mutable state one interpretation pass needs: the
// current environment frame, the resolver's node_id -> depth map, and the
// I/O streams the print/input/errors statements and the input() native
// observe.
type Evaluator struct {
	Global       *environment.Environment
	Env          *environment.Environment
	Depths       map[int]int
	Out          *bufio.Writer
	In           *bufio.Reader
	PrintPointer string
	Exit         func(code int)

	// MaxCallDepth caps nested user-function calls; 0 means unbounded.
	// callDepth tracks the current nesting.
	MaxCallDepth int
	callDepth    int

	// ImportPaths are extra directories execImport searches, in order,
	// when a path does not resolve against the working directory.
	ImportPaths []string
}

// New creates an Evaluator with a fresh global frame, the native functions
// already installed into it, stdio streams, and the default print pointer.
func New() *Evaluator {
	global := environment.New()
	out := bufio.NewWriter(os.Stdout)
	in := bufio.NewReader(os.Stdin)
	e := &Evaluator{
		Global:       global,
		Env:          global,
		Depths:       map[int]int{},
		Out:          out,
		In:           in,
		PrintPointer: defaultPrintPointer,
		Exit:         os.Exit,
	}
	natives.Register(global, in, out)
	return e
}

// NewWithIO creates an Evaluator like New, but reading from in and writing
// to out instead of the process's stdio — used by tests and by any
// embedder that wants to capture program output.
func NewWithIO(out io.Writer, in io.Reader) *Evaluator {
	e := New()
	bufOut := bufio.NewWriter(out)
	bufIn := bufio.NewReader(in)
	e.Out = bufOut
	e.In = bufIn
	natives.Register(e.Global, bufIn, bufOut)
	return e
}

// SetPointer overrides the configured print pointer. The literal value
// "default" reselects the built-in default instead of being printed
// verbatim.
func (e *Evaluator) SetPointer(p string) {
	if p == "default" {
		e.PrintPointer = defaultPrintPointer
		return
	}
	e.PrintPointer = p
}

// Run resolves and interprets an already-parsed program's top-level
// statements against the evaluator's global frame.
func (e *Evaluator) Run(prog *parser.Program) error {
	depths, errs := resolver.Resolve(prog)
	if len(errs) > 0 {
		return fmt.Errorf("resolution error: %s", errs[0])
	}
	e.Depths = depths
	err := e.execStatements(prog.Statements)
	e.Out.Flush()
	return err
}

// CallUserFunction implements callable.Interpreter: it runs fn's body in a
// fresh frame enclosing its captured closure, with params bound to args.
func (e *Evaluator) CallUserFunction(fn *callable.UserFunction, args []values.Value) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, runtimeErrorf("wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}
	if e.MaxCallDepth > 0 && e.callDepth >= e.MaxCallDepth {
		return nil, runtimeErrorf("call depth exceeded %d (recursion too deep in '%s')", e.MaxCallDepth, fn.Name)
	}
	callEnv := fn.Closure.Enclose()
	for i, name := range fn.Params {
		callEnv.Define(name, args[i])
	}

	savedEnv := e.Env
	e.Env = callEnv
	e.callDepth++
	err := e.execStatements(fn.Body)
	e.callDepth--
	e.Env = savedEnv

	if ret, ok := err.(*ReturnSignal); ok {
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return values.Nil, nil
}

// print writes s prefixed by the configured pointer, followed by a newline.
func (e *Evaluator) print(s string) {
	fmt.Fprintf(e.Out, "%s%s\n", e.PrintPointer, s)
	e.Out.Flush()
}
