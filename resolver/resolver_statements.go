/*
File    : tron/resolver/resolver_statements.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package resolver

import (
	"github.com/tron-lang/tron/lexer"
	"github.com/tron-lang/tron/parser"
)

func (r *Resolver) resolveStmts(stmts []parser.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *parser.PrintStmt:
		r.resolveExpr(s.Expression)
	case *parser.InputStmt:
		r.resolveExpr(s.Expression)
	case *parser.ErrorsStmt:
		r.resolveExpr(s.Expression)
	case *parser.ExitsStmt:
		// no references
	case *parser.ImportStmt:
		r.resolveExpr(s.Expression)
	case *parser.VarStmt:
		r.resolveVarStmt(s)
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *parser.IfStmt:
		r.resolveExpr(s.Predicate)
		r.resolveStmt(s.Then)
		for _, elif := range s.Elifs {
			r.resolveExpr(elif.Predicate)
			r.resolveStmt(elif.Body)
		}
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *parser.TryStmt:
		r.resolveStmt(s.Try)
		r.resolveStmt(s.Catch)
	case *parser.WhileStmt:
		r.loopDepth++
		r.resolveExpr(s.Predicate)
		r.resolveStmt(s.Body)
		r.loopDepth--
	case *parser.BenchStmt:
		r.resolveStmt(s.Body)
	case *parser.FunctionStmt:
		r.declare(s.Name.Literal)
		r.define(s.Name.Literal)
		r.resolveFunction(tokenLiterals(s.Params), s.Body)
	case *parser.CmdFunctionStmt:
		r.declare(s.Name.Literal)
		r.define(s.Name.Literal)
	case *parser.ReturnStmt:
		if r.funcDepth == 0 {
			r.errorf("return outside function")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *parser.BreakStmt:
		if r.loopDepth == 0 {
			r.errorf("break outside loop")
		}
	default:
		r.errorf("resolver: unhandled statement type %T", stmt)
	}
}

func (r *Resolver) resolveVarStmt(s *parser.VarStmt) {
	r.declare(s.Name.Literal)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name.Literal)
}

func tokenLiterals(toks []lexer.Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Literal
	}
	return out
}
