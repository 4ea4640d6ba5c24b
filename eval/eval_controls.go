/*
File    : tron/eval/eval_controls.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// execIf evaluates the predicate, then/elif-chain/else of an IfStmt,
// running the first branch whose predicate is truthy.
func (e *Evaluator) execIf(n *parser.IfStmt) error {
	cond, err := e.evalExpr(n.Predicate)
	if err != nil {
		return err
	}
	if values.IsTruthy(cond) {
		return e.execStmt(n.Then)
	}
	for _, elif := range n.Elifs {
		cond, err := e.evalExpr(elif.Predicate)
		if err != nil {
			return err
		}
		if values.IsTruthy(cond) {
			return e.execStmt(elif.Body)
		}
	}
	if n.Else != nil {
		return e.execStmt(n.Else)
	}
	return nil
}

// execTry runs Try exactly once; a *RuntimeError from it is swallowed and
// Catch runs instead. BreakSignal and ReturnSignal are control flow, not
// runtime errors, and pass through untouched.
func (e *Evaluator) execTry(n *parser.TryStmt) error {
	err := e.execStmt(n.Try)
	if err == nil {
		return nil
	}
	if _, ok := err.(*RuntimeError); ok {
		return e.execStmt(n.Catch)
	}
	return err
}
