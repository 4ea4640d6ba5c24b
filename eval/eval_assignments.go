/*
File    : tron/eval/eval_assignments.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// evalSet assigns to a dotted field on Object. Only the array "length"
// slot style member names would reach here, and none of them are
// writable, so Set is currently always a runtime error — kept as its own
// case rather than folded into evalGet because the grammar distinguishes
// assignment targets from reads.
func (e *Evaluator) evalSet(n *parser.SetExpr) (values.Value, error) {
	obj, err := e.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	if _, err := e.evalExpr(n.Value); err != nil {
		return nil, err
	}
	return nil, runtimeErrorAt(n.Name.Line, "value of type %s has no settable member '%s'", values.TypeName(obj), n.Name.Literal)
}
