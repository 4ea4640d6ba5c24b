/*
File    : tron/callable/callable.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package callable holds the concrete values.Callable implementations:
// user-defined functions, native built-ins, and command-bound functions
// shelled out via os/exec. It imports values and environment but neither
// of those import it back, avoiding the cycle a single values+callable
// package would create.
package callable

import (
	"os/exec"
	"strings"

	"github.com/tron-lang/tron/environment"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// Interpreter is the slice of the evaluator a UserFunction needs to run
// its body. Kept minimal and defined here (rather than imported from eval)
// so callable has no dependency on eval — eval depends on callable instead.
type Interpreter interface {
	CallUserFunction(fn *UserFunction, args []values.Value) (values.Value, error)
}

// UserFunction is a function declared with `fun name(params) start ... end`.
// Closure is the environment captured at declaration time, which is how
// Tron functions see variables from their enclosing scope.
type UserFunction struct {
	Name    string
	Params  []string
	Body    []parser.Stmt
	Closure *environment.Environment
	Interp  Interpreter
}

func NewUserFunction(name string, params []string, body []parser.Stmt, closure *environment.Environment, interp Interpreter) *UserFunction {
	return &UserFunction{Name: name, Params: params, Body: body, Closure: closure, Interp: interp}
}

func (f *UserFunction) Kind() values.Kind { return values.CallableKind }
func (f *UserFunction) String() string    { return "<function " + f.Name + ">" }
func (f *UserFunction) FuncName() string  { return f.Name }
func (f *UserFunction) Arity() int        { return len(f.Params) }

// Call runs the function body in a fresh frame enclosing Closure, binding
// Params to args positionally. Delegates back into the interpreter since
// running statements is the evaluator's job, not callable's.
func (f *UserFunction) Call(args []values.Value) (values.Value, error) {
	return f.Interp.CallUserFunction(f, args)
}

// NativeFunction wraps one of the closed set of built-ins (sin, len, push,
// ...). Fn receives already-evaluated arguments and returns a result or an
// error to be surfaced as a runtime error.
type NativeFunction struct {
	Name    string
	NumArgs int
	Fn      func(args []values.Value) (values.Value, error)
}

func NewNativeFunction(name string, arity int, fn func(args []values.Value) (values.Value, error)) *NativeFunction {
	return &NativeFunction{Name: name, NumArgs: arity, Fn: fn}
}

func (f *NativeFunction) Kind() values.Kind { return values.CallableKind }
func (f *NativeFunction) String() string    { return "<native " + f.Name + ">" }
func (f *NativeFunction) FuncName() string  { return f.Name }
func (f *NativeFunction) Arity() int        { return f.NumArgs }
func (f *NativeFunction) Call(args []values.Value) (values.Value, error) {
	return f.Fn(args)
}

// CommandFunction is declared `fun name gets "shell command";`. It takes no
// arguments; calling it runs Cmd through the shell, returning its combined
// stdout+stderr with leading and trailing whitespace trimmed.
type CommandFunction struct {
	Name string
	Cmd  string
}

func NewCommandFunction(name, cmd string) *CommandFunction {
	return &CommandFunction{Name: name, Cmd: cmd}
}

func (f *CommandFunction) Kind() values.Kind { return values.CallableKind }
func (f *CommandFunction) String() string    { return "<command " + f.Name + ">" }
func (f *CommandFunction) FuncName() string  { return f.Name }
func (f *CommandFunction) Arity() int        { return 0 }

func (f *CommandFunction) Call() (values.Value, error) {
	cmd := exec.Command("sh", "-c", f.Cmd)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return values.NewString(strings.TrimSpace(string(out))), err
	}
	return values.NewString(strings.TrimSpace(string(out))), nil
}
