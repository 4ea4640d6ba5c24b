/*
File    : tron/resolver/resolver_expressions.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package resolver

import "github.com/tron-lang/tron/parser"

func (r *Resolver) resolveExpr(expr parser.Expr) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// nothing to resolve
	case *parser.VariableExpr:
		if r.isSelfInitRead(e.Name.Literal) {
			r.errorf("cannot read variable '%s' in its own initializer", e.Name.Literal)
			return
		}
		r.resolveLocal(e, e.Name.Literal)
	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Literal)
	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)
	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.PipeExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *parser.GroupingExpr:
		r.resolveExpr(e.Inner)
	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *parser.AnonFunctionExpr:
		r.resolveFunction(tokenLiterals(e.Params), e.Body)
	case *parser.GetExpr:
		r.resolveExpr(e.Object)
	case *parser.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *parser.ArrayExpr:
		for _, el := range e.Elements {
			r.resolveExpr(el)
		}
	case *parser.IndexExpr:
		r.resolveExpr(e.Array)
		r.resolveExpr(e.Index)
	default:
		r.errorf("resolver: unhandled expression type %T", expr)
	}
}
