/*
File    : tron/parser/parser_statements.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// declaration dispatches the declaration-level productions (var, fun) and
// falls through to statement() for everything else.
func (p *Parser) declaration() Stmt {
	switch {
	case p.check(lexer.VAR_KEY):
		p.advance()
		return p.varDeclaration()
	case p.check(lexer.FUN_KEY):
		p.advance()
		return p.funDeclaration()
	default:
		return p.statement()
	}
}

// varDeclaration parses `"var" IDENT ("=" expression)? ";"`, already past
// the leading 'var'.
func (p *Parser) varDeclaration() Stmt {
	name := p.expect(lexer.IDENTIFIER_ID, "expected variable name")

	var init Expr
	if p.match(lexer.ASSIGN_OP) {
		init = p.expression()
	}
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after variable declaration")
	return &VarStmt{base: base{p.newID()}, Name: name, Initializer: init}
}

// statement dispatches every statement-level keyword.
func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.INPUT_KEY):
		return p.inputStatement()
	case p.match(lexer.ERRORS_KEY):
		return p.errorsStatement()
	case p.match(lexer.EXITS_KEY):
		return p.exitsStatement()
	case p.match(lexer.IMPORT_KEY):
		return p.importStatement()
	case p.check(lexer.IF_KEY):
		p.advance()
		return p.ifStatement()
	case p.check(lexer.TRY_KEY):
		p.advance()
		return p.tryStatement()
	case p.check(lexer.WHILE_KEY):
		p.advance()
		return p.whileStatement()
	case p.check(lexer.BENCH_KEY):
		p.advance()
		return p.benchStatement()
	case p.check(lexer.FOR_KEY):
		p.advance()
		return p.forStatement()
	case p.check(lexer.RETURN_KEY):
		p.advance()
		return p.returnStatement()
	case p.match(lexer.BREAK_KEY):
		p.expect(lexer.SEMICOLON_DELIM, "expected ';' after 'break'")
		return &BreakStmt{base: base{p.newID()}}
	case p.check(lexer.START_KEY):
		p.advance()
		stmts := p.blockStatements()
		p.expect(lexer.END_KEY, "expected 'end' to close block")
		return &BlockStmt{base: base{p.newID()}, Statements: stmts}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after print statement")
	return &PrintStmt{base: base{p.newID()}, Expression: expr}
}

func (p *Parser) inputStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after input statement")
	return &InputStmt{base: base{p.newID()}, Expression: expr}
}

func (p *Parser) errorsStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after errors statement")
	return &ErrorsStmt{base: base{p.newID()}, Expression: expr}
}

func (p *Parser) exitsStatement() Stmt {
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after 'exits'")
	return &ExitsStmt{base: base{p.newID()}}
}

func (p *Parser) importStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after import statement")
	return &ImportStmt{base: base{p.newID()}, Expression: expr}
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.expect(lexer.SEMICOLON_DELIM, "expected ';' after expression")
	return &ExpressionStmt{base: base{p.newID()}, Expression: expr}
}

// blockStatements parses declarations up to (not including) the closing
// 'end'.
func (p *Parser) blockStatements() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.END_KEY) && !p.atEnd() {
		if stmt := p.safeDeclaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
