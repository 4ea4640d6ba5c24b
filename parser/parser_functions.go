/*
File    : tron/parser/parser_functions.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// funDeclaration parses `"fun" IDENT ( "gets" STRING ";" | "(" params? ")"
// "start" block "end" )`, already past the leading 'fun'. Neither form may
// declare a function under one of the fixed native names.
func (p *Parser) funDeclaration() Stmt {
	name := p.expect(lexer.IDENTIFIER_ID, "expected function name")
	if lexer.NATIVE_NAMES[name.Literal] {
		panic(p.errorAt(name, "cannot redefine native function '"+name.Literal+"'"))
	}

	if p.match(lexer.GETS_KEY) {
		cmdTok := p.expect(lexer.STRING_LIT, "expected shell command string after 'gets'")
		p.expect(lexer.SEMICOLON_DELIM, "expected ';' after command function declaration")
		return &CmdFunctionStmt{base: base{p.newID()}, Name: name, Cmd: stripQuotes(cmdTok.Literal)}
	}

	p.expect(lexer.LEFT_PAREN, "expected '(' after function name")
	params := p.paramList()
	p.expect(lexer.RIGHT_PAREN, "expected ')' after parameters")
	p.expect(lexer.START_KEY, "expected 'start' to begin function body")
	body := p.blockStatements()
	p.expect(lexer.END_KEY, "expected 'end' to close function body")

	return &FunctionStmt{base: base{p.newID()}, Name: name, Params: params, Body: body}
}

// returnStatement parses `"return" expression? ";"`, already past the
// leading 'return'.
func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON_DELIM) {
		value = p.expression()
	}
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after return statement")
	return &ReturnStmt{base: base{p.newID()}, Keyword: keyword, Value: value}
}

// stripQuotes removes a single pair of enclosing double quotes from a
// string literal's lexeme, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
