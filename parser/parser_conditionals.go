/*
File    : tron/parser/parser_conditionals.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// ifStatement parses `"if" expression statement ("elif" expression
// statement)* ("else" statement)?`, already past the leading 'if'.
func (p *Parser) ifStatement() Stmt {
	predicate := p.expression()
	then := p.statement()

	var elifs []ElifBranch
	for p.match(lexer.ELIF_KEY) {
		elifPred := p.expression()
		elifBody := p.statement()
		elifs = append(elifs, ElifBranch{Predicate: elifPred, Body: elifBody})
	}

	var elseBranch Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch = p.statement()
	}

	return &IfStmt{base: base{p.newID()}, Predicate: predicate, Then: then, Elifs: elifs, Else: elseBranch}
}

// tryStatement parses `"try" statement "catch" statement`. A missing
// catch is a parse error, already past the leading 'try'.
func (p *Parser) tryStatement() Stmt {
	tryBody := p.statement()
	if !p.match(lexer.CATCH_KEY) {
		panic(p.errorAt(p.Curr, "expected 'catch' after 'try'"))
	}
	catchBody := p.statement()
	return &TryStmt{base: base{p.newID()}, Try: tryBody, Catch: catchBody}
}
