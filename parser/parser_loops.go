/*
File    : tron/parser/parser_loops.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// whileStatement parses `"while" expression statement`, already past the
// leading 'while'.
func (p *Parser) whileStatement() Stmt {
	predicate := p.expression()
	body := p.statement()
	return &WhileStmt{base: base{p.newID()}, Predicate: predicate, Body: body}
}

// benchStatement parses `"bench" statement`, already past the leading
// 'bench'.
func (p *Parser) benchStatement() Stmt {
	body := p.statement()
	return &BenchStmt{base: base{p.newID()}, Body: body}
}

// forStatement parses `"for" "(" (varDecl|exprStmt|";") expression? ";"
// expression? ")" statement` and desugars it into
// `{ init; while (cond) { body; incr; } }`, already past the leading
// 'for'. A missing condition becomes `true`.
func (p *Parser) forStatement() Stmt {
	p.expect(lexer.LEFT_PAREN, "expected '(' after 'for'")

	var init Stmt
	switch {
	case p.match(lexer.SEMICOLON_DELIM):
		init = nil
	case p.check(lexer.VAR_KEY):
		p.advance()
		init = p.varDeclaration()
	default:
		init = p.expressionStatement()
	}

	var cond Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		cond = p.expression()
	}
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after loop condition")
	if cond == nil {
		cond = &LiteralExpr{base: base{p.newID()}, Token: lexer.NewToken(lexer.TRUE_KEY, "true")}
	}

	var incr Expr
	if !p.check(lexer.RIGHT_PAREN) {
		incr = p.expression()
	}
	p.expect(lexer.RIGHT_PAREN, "expected ')' after for clauses")

	body := p.statement()

	if incr != nil {
		body = &BlockStmt{base: base{p.newID()}, Statements: []Stmt{
			body,
			&ExpressionStmt{base: base{p.newID()}, Expression: incr},
		}}
	}

	body = &WhileStmt{base: base{p.newID()}, Predicate: cond, Body: body}

	var outer []Stmt
	if init != nil {
		outer = append(outer, init)
	}
	outer = append(outer, body)

	return &BlockStmt{base: base{p.newID()}, Statements: outer}
}
