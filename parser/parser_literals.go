/*
File    : tron/parser/parser_literals.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// primary parses the leaves of an expression: literals, identifiers,
// grouping, array literals, and anonymous function literals.
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE_KEY, lexer.TRUE_KEY, lexer.NIL_KEY, lexer.NUMBER_LIT, lexer.STRING_LIT):
		return &LiteralExpr{base: base{p.newID()}, Token: p.previous()}
	case p.match(lexer.IDENTIFIER_ID):
		return &VariableExpr{base: base{p.newID()}, Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		inner := p.expression()
		p.expect(lexer.RIGHT_PAREN, "expected ')' after expression")
		return &GroupingExpr{base: base{p.newID()}, Inner: inner}
	case p.match(lexer.LEFT_BRACK):
		return p.arrayLiteral()
	case p.match(lexer.FUN_KEY):
		return p.anonFunction()
	}
	panic(p.errorAt(p.Curr, "expected expression"))
}

// previous returns the token just consumed by the last advance()/match().
// Parser keeps only one-token lookahead forward, so callers track this via
// the token returned from match/advance; this helper is used where the
// call site didn't keep it explicitly.
func (p *Parser) previous() lexer.Token {
	return p.lastConsumed
}

// arrayLiteral parses `[e1, e2, ...]`, already past the opening '['.
func (p *Parser) arrayLiteral() Expr {
	var elems []Expr
	if !p.check(lexer.RIGHT_BRACK) {
		for {
			elems = append(elems, p.expression())
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	p.expect(lexer.RIGHT_BRACK, "expected ']' after array elements")
	return &ArrayExpr{base: base{p.newID()}, Elements: elems}
}

// anonFunction parses `fun (params) start block end` as an expression,
// already past the leading 'fun'.
func (p *Parser) anonFunction() Expr {
	p.expect(lexer.LEFT_PAREN, "expected '(' after 'fun'")
	params := p.paramList()
	p.expect(lexer.RIGHT_PAREN, "expected ')' after parameters")
	p.expect(lexer.START_KEY, "expected 'start' to begin function body")
	body := p.blockStatements()
	p.expect(lexer.END_KEY, "expected 'end' to close function body")
	return &AnonFunctionExpr{base: base{p.newID()}, Params: params, Body: body}
}

// paramList parses a comma-separated parameter name list, capped at 255,
// up to (not including) the closing ')'.
func (p *Parser) paramList() []lexer.Token {
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				panic(p.errorAt(p.Curr, "cannot have more than 255 parameters"))
			}
			params = append(params, p.expect(lexer.IDENTIFIER_ID, "expected parameter name"))
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	return params
}
