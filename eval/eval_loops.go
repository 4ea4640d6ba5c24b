/*
File    : tron/eval/eval_loops.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"fmt"
	"time"

	"github.com/tron-lang/tron/callable"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// execWhile runs Body while Predicate is truthy. A BreakSignal from Body
// exits the loop normally; any other error propagates to the caller.
func (e *Evaluator) execWhile(n *parser.WhileStmt) error {
	for {
		cond, err := e.evalExpr(n.Predicate)
		if err != nil {
			return err
		}
		if !values.IsTruthy(cond) {
			return nil
		}
		if err := e.execStmt(n.Body); err != nil {
			if _, ok := err.(*BreakSignal); ok {
				return nil
			}
			return err
		}
	}
}

// execBench runs Body once and prints its wall-clock duration, scaled to
// microseconds, milliseconds, or fractional seconds depending on
// magnitude.
func (e *Evaluator) execBench(n *parser.BenchStmt) error {
	start := time.Now()
	err := e.execStmt(n.Body)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	micros := elapsed.Microseconds()
	var report string
	switch {
	case micros < 10000:
		report = fmt.Sprintf("%dus", micros)
	case elapsed.Milliseconds() < 10000:
		report = fmt.Sprintf("%dms", elapsed.Milliseconds())
	default:
		report = fmt.Sprintf("%.3fs", elapsed.Seconds())
	}
	e.print(report)
	return nil
}

// execFunction builds a UserFunction capturing the current environment and
// defines it under its own name in the current frame, enabling
// self-reference for recursive functions.
func (e *Evaluator) execFunction(n *parser.FunctionStmt) error {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Literal
	}
	fn := callable.NewUserFunction(n.Name.Literal, params, n.Body, e.Env, e)
	e.Env.Define(n.Name.Literal, fn)
	return nil
}

// execCmdFunction builds a CommandFunction bound to its shell command and
// defines it under its own name.
func (e *Evaluator) execCmdFunction(n *parser.CmdFunctionStmt) error {
	fn := callable.NewCommandFunction(n.Name.Literal, n.Cmd)
	e.Env.Define(n.Name.Literal, fn)
	return nil
}
