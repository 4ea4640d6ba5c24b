/*
File    : tron/eval/eval_collections.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// evalArray evaluates an array literal's elements in order.
func (e *Evaluator) evalArray(n *parser.ArrayExpr) (values.Value, error) {
	elems := make([]values.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.evalExpr(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return values.NewArray(elems), nil
}

// evalIndex reads arr[index], failing on a non-array/non-string target or
// an out-of-range index.
func (e *Evaluator) evalIndex(n *parser.IndexExpr) (values.Value, error) {
	target, err := e.evalExpr(n.Array)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.evalExpr(n.Index)
	if err != nil {
		return nil, err
	}
	line := n.Bracket.Line
	idx, err := asNumber(idxVal, "[]", line)
	if err != nil {
		return nil, err
	}
	i := int(idx)

	switch coll := target.(type) {
	case *values.Array:
		if i < 0 || i >= len(coll.Elems) {
			return nil, runtimeErrorAt(line, "array index %d out of range (length %d)", i, len(coll.Elems))
		}
		return coll.Elems[i], nil
	case *values.String:
		runes := []rune(coll.Val)
		if i < 0 || i >= len(runes) {
			return nil, runtimeErrorAt(line, "string index %d out of range (length %d)", i, len(runes))
		}
		return values.NewString(string(runes[i])), nil
	default:
		return nil, runtimeErrorAt(line, "cannot index into value of type %s", values.TypeName(target))
	}
}

// evalGet reads a dotted member off Object. The only native-backed member
// currently exposed is "length" on arrays and strings; everything else is
// a runtime error.
func (e *Evaluator) evalGet(n *parser.GetExpr) (values.Value, error) {
	obj, err := e.evalExpr(n.Object)
	if err != nil {
		return nil, err
	}
	switch member := n.Name.Literal; member {
	case "length":
		switch coll := obj.(type) {
		case *values.Array:
			return values.NewNumber(float64(len(coll.Elems))), nil
		case *values.String:
			return values.NewNumber(float64(len([]rune(coll.Val)))), nil
		default:
			return nil, runtimeErrorAt(n.Name.Line, "value of type %s has no member 'length'", values.TypeName(obj))
		}
	default:
		return nil, runtimeErrorAt(n.Name.Line, "value of type %s has no member '%s'", values.TypeName(obj), member)
	}
}
