/*
File    : tron/parser/parser_expressions.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package parser

import "github.com/tron-lang/tron/lexer"

// expression is the entry point into the precedence ladder:
// assignment → pipe → or → nor → xor → and → equality → comparison →
// term → factor → unary → call → primary.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is the only right-associative level. A Variable target
// becomes Assign, a Get target becomes Set; anything else is a parse
// error.
func (p *Parser) assignment() Expr {
	expr := p.pipe()

	if p.match(lexer.ASSIGN_OP) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{base: base{p.newID()}, Name: e.Name, Value: value}
		case *GetExpr:
			return &SetExpr{base: base{p.newID()}, Object: e.Object, Name: e.Name, Value: value}
		default:
			panic(p.errorAt(equals, "invalid assignment target"))
		}
	}
	return expr
}

// pipe desugars `x | f` into a call `f(x)`, left-to-right chainable.
func (p *Parser) pipe() Expr {
	left := p.or()
	for p.match(lexer.PIPE_OP) {
		right := p.or()
		left = &PipeExpr{base: base{p.newID()}, Left: left, Right: right}
	}
	return left
}

func (p *Parser) or() Expr {
	left := p.nor()
	for p.check(lexer.OR_KEY) {
		op := p.advance()
		right := p.nor()
		left = &LogicalExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) nor() Expr {
	left := p.xor()
	for p.check(lexer.NOR_KEY) {
		op := p.advance()
		right := p.xor()
		left = &LogicalExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) xor() Expr {
	left := p.and()
	for p.check(lexer.XOR_KEY) {
		op := p.advance()
		right := p.and()
		left = &LogicalExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) and() Expr {
	left := p.equality()
	for p.check(lexer.AND_KEY) {
		op := p.advance()
		right := p.equality()
		left = &LogicalExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) equality() Expr {
	left := p.comparison()
	for p.check(lexer.EQ_OP) || p.check(lexer.NE_OP) {
		op := p.advance()
		right := p.comparison()
		left = &BinaryExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

func (p *Parser) comparison() Expr {
	left := p.term()
	for p.check(lexer.LT_OP) || p.check(lexer.LE_OP) || p.check(lexer.GT_OP) || p.check(lexer.GE_OP) {
		op := p.advance()
		right := p.term()
		left = &BinaryExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

// term covers + - += -= random.
func (p *Parser) term() Expr {
	left := p.factor()
	for p.check(lexer.PLUS_OP) || p.check(lexer.MINUS_OP) ||
		p.check(lexer.PLUS_ASSIGN) || p.check(lexer.MINUS_ASSIGN) || p.check(lexer.RANDOM_OP) {
		op := p.advance()
		right := p.factor()
		left = &BinaryExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

// factor covers * / ^ cube root cubicroot.
func (p *Parser) factor() Expr {
	left := p.unary()
	for p.check(lexer.MUL_OP) || p.check(lexer.DIV_OP) || p.check(lexer.CARET_OP) ||
		p.check(lexer.CUBE_OP) || p.check(lexer.ROOT_OP) || p.check(lexer.CUBICROOT_OP) {
		op := p.advance()
		right := p.unary()
		left = &BinaryExpr{base: base{p.newID()}, Left: left, Op: op, Right: right}
	}
	return left
}

// unary covers ! - ++ -- %, all prefix.
func (p *Parser) unary() Expr {
	if p.check(lexer.NOT_OP) || p.check(lexer.MINUS_OP) || p.check(lexer.INCREMENT_OP) ||
		p.check(lexer.DECREMENT_OP) || p.check(lexer.MOD_OP) {
		op := p.advance()
		right := p.unary()
		return &UnaryExpr{base: base{p.newID()}, Op: op, Right: right}
	}
	return p.call()
}

// call handles postfix call/dot/index chains on a primary expression.
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else if p.match(lexer.DOT_OP) {
			name := p.expect(lexer.IDENTIFIER_ID, "expected property name after '.'")
			expr = &GetExpr{base: base{p.newID()}, Object: expr, Name: name}
		} else if p.match(lexer.LEFT_BRACK) {
			bracket := p.previous()
			idx := p.expression()
			p.expect(lexer.RIGHT_BRACK, "expected ']' after index")
			expr = &IndexExpr{base: base{p.newID()}, Array: expr, Bracket: bracket, Index: idx}
		} else {
			break
		}
	}
	return expr
}

const maxArgs = 255

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				panic(p.errorAt(p.Curr, "cannot have more than 255 arguments"))
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}
	paren := p.expect(lexer.RIGHT_PAREN, "expected ')' after arguments")
	return &CallExpr{base: base{p.newID()}, Callee: callee, Paren: paren, Args: args}
}
