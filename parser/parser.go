/*
File    : tron/parser/parser.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import (
	"fmt"

	"github.com/tron-lang/tron/lexer"
)

// Parser is a recursive-descent parser over a token stream produced by
// lexer.Lexer. It keeps a one-token lookahead (Curr, Next) and accumulates
// errors rather than failing on the first one: on a parse error it panics
// with a *parseError, which Parse recovers at statement boundaries and
// turns into a synchronize() call, matching the "collect everything, then
// report" error model.
type Parser struct {
	lex          *lexer.Lexer
	Curr         lexer.Token
	Next         lexer.Token
	Errors       []string
	nextID       int
	lastConsumed lexer.Token
}

// NewParser creates a Parser over src, already primed with its first two
// tokens of lookahead.
func NewParser(src string) *Parser {
	lx := lexer.NewLexer(src)
	p := &Parser{lex: &lx}
	p.Curr = p.lex.NextToken()
	p.Next = p.lex.NextToken()
	return p
}

// newID hands out the next monotonically increasing node ID.
func (p *Parser) newID() int {
	id := p.nextID
	p.nextID++
	return id
}

// parseError is panicked by expect and errorAt to unwind to the nearest
// declaration boundary without threading an error return through every
// production in the grammar.
type parseError struct {
	msg string
}

func (e *parseError) Error() string { return e.msg }

// errorAt builds a line-anchored parseError.
func (p *Parser) errorAt(tok lexer.Token, msg string) *parseError {
	return &parseError{msg: fmt.Sprintf("Line %d: %s", tok.Line, msg)}
}

// advance consumes Curr and shifts Next into its place.
func (p *Parser) advance() lexer.Token {
	prev := p.Curr
	p.Curr = p.Next
	if !p.atEnd() {
		p.Next = p.lex.NextToken()
	}
	p.lastConsumed = prev
	return prev
}

func (p *Parser) atEnd() bool {
	return p.Curr.Type == lexer.EOF_TYPE
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.Curr.Type == tt
}

// match advances and returns true if Curr is any of the given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes Curr if it has type tt, else panics with a parseError
// carrying msg.
func (p *Parser) expect(tt lexer.TokenType, msg string) lexer.Token {
	if p.check(tt) {
		return p.advance()
	}
	panic(p.errorAt(p.Curr, msg))
}

// Parse consumes the full token stream and returns the resulting program.
// Errors are collected on p.Errors rather than returned; callers should
// check len(p.Errors) == 0 before trusting the result.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.atEnd() {
		if stmt := p.safeDeclaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

// safeDeclaration runs declaration() and, on a parse error, records it and
// synchronizes instead of propagating the panic.
func (p *Parser) safeDeclaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(*parseError)
			if !ok {
				panic(r)
			}
			p.Errors = append(p.Errors, pe.msg)
			p.synchronize()
			stmt = nil
		}
	}()
	return p.declaration()
}

// synchronize discards tokens until it reaches a likely statement boundary:
// just past a ';', or right before a statement-starting keyword.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		if p.Curr.Type == lexer.SEMICOLON_DELIM {
			p.advance()
			return
		}
		switch p.Curr.Type {
		case lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY, lexer.IF_KEY,
			lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY, lexer.TRY_KEY,
			lexer.BENCH_KEY, lexer.IMPORT_KEY, lexer.EXITS_KEY,
			lexer.ERRORS_KEY, lexer.INPUT_KEY, lexer.START_KEY, lexer.BREAK_KEY:
			return
		}
		p.advance()
	}
}
