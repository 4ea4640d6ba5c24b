/*
File    : tron/parser/node.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package parser turns a token stream into an abstract syntax tree. Every
// node carries a unique, monotonically increasing ID assigned at parse
// time; the resolver uses these IDs as keys into its node-to-scope-depth
// map, since Go doesn't let us stash extra fields onto the tree after the
// fact without threading them through every constructor.
package parser

import "github.com/tron-lang/tron/lexer"

// Node is satisfied by every expression and statement in the tree.
type Node interface {
	ID() int
}

// Expr is satisfied by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// base carries the node ID every concrete node embeds.
type base struct {
	NodeID int
}

func (b base) ID() int { return b.NodeID }

// ---- Expressions ----

// LiteralExpr is a number, string, boolean, or nil literal.
type LiteralExpr struct {
	base
	Token lexer.Token
}

func (*LiteralExpr) exprNode() {}

// VariableExpr reads a named variable.
type VariableExpr struct {
	base
	Name lexer.Token
}

func (*VariableExpr) exprNode() {}

// AssignExpr assigns Value to the variable Name.
type AssignExpr struct {
	base
	Name  lexer.Token
	Value Expr
}

func (*AssignExpr) exprNode() {}

// UnaryExpr applies a prefix operator: ! - ++ -- %.
type UnaryExpr struct {
	base
	Op    lexer.Token
	Right Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr applies an infix operator at the term/factor level.
type BinaryExpr struct {
	base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// LogicalExpr applies and/or/nor/xor, short-circuiting for and/or only.
type LogicalExpr struct {
	base
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (*LogicalExpr) exprNode() {}

// PipeExpr desugars `x | f` into a call `f(x)`, chainable.
type PipeExpr struct {
	base
	Left  Expr
	Right Expr
}

func (*PipeExpr) exprNode() {}

// GroupingExpr is a parenthesized expression.
type GroupingExpr struct {
	base
	Inner Expr
}

func (*GroupingExpr) exprNode() {}

// CallExpr invokes Callee with Args. Paren is the closing paren token, kept
// for error line reporting.
type CallExpr struct {
	base
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// AnonFunctionExpr is an anonymous function literal.
type AnonFunctionExpr struct {
	base
	Params []lexer.Token
	Body   []Stmt
}

func (*AnonFunctionExpr) exprNode() {}

// GetExpr reads a dotted field off Object.
type GetExpr struct {
	base
	Object Expr
	Name   lexer.Token
}

func (*GetExpr) exprNode() {}

// SetExpr assigns Value to a dotted field on Object.
type SetExpr struct {
	base
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (*SetExpr) exprNode() {}

// ArrayExpr is an array literal `[a, b, c]`.
type ArrayExpr struct {
	base
	Elements []Expr
}

func (*ArrayExpr) exprNode() {}

// IndexExpr is an array index `arr[i]`.
type IndexExpr struct {
	base
	Array   Expr
	Bracket lexer.Token
	Index   Expr
}

func (*IndexExpr) exprNode() {}

// ---- Statements ----

// ExpressionStmt evaluates Expression and discards its value.
type ExpressionStmt struct {
	base
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt prints the value of Expression, prefixed with the configured
// pointer.
type PrintStmt struct {
	base
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// InputStmt prints a prompt (the value of Expression) and reads a line,
// which is discarded; prompting is the only observable effect.
type InputStmt struct {
	base
	Expression Expr
}

func (*InputStmt) stmtNode() {}

// ErrorsStmt prints the value of Expression and terminates the program
// with exit code 1.
type ErrorsStmt struct {
	base
	Expression Expr
}

func (*ErrorsStmt) stmtNode() {}

// ExitsStmt terminates the program immediately with exit code 1.
type ExitsStmt struct {
	base
}

func (*ExitsStmt) stmtNode() {}

// ImportStmt evaluates Expression to a string path and runs a fresh
// scan-parse-resolve-interpret pipeline over its contents.
type ImportStmt struct {
	base
	Expression Expr
}

func (*ImportStmt) stmtNode() {}

// VarStmt declares Name, optionally initialized by Initializer.
type VarStmt struct {
	base
	Name        lexer.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}

// BlockStmt is a `start ... end` block, its own lexical scope.
type BlockStmt struct {
	base
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// ElifBranch is one `elif` arm of an IfStmt.
type ElifBranch struct {
	Predicate Expr
	Body      Stmt
}

// IfStmt is an if/elif.../else chain.
type IfStmt struct {
	base
	Predicate Expr
	Then      Stmt
	Elifs     []ElifBranch
	Else      Stmt
}

func (*IfStmt) stmtNode() {}

// TryStmt runs Try; if it fails, Catch runs instead. Try runs exactly once
// regardless of outcome.
type TryStmt struct {
	base
	Try   Stmt
	Catch Stmt
}

func (*TryStmt) stmtNode() {}

// WhileStmt loops Body while Predicate is truthy.
type WhileStmt struct {
	base
	Predicate Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// BenchStmt runs Body once and prints its wall-clock duration.
type BenchStmt struct {
	base
	Body Stmt
}

func (*BenchStmt) stmtNode() {}

// FunctionStmt declares a user-defined function.
type FunctionStmt struct {
	base
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// CmdFunctionStmt declares a command-bound function: calling it shells out
// to Cmd and returns its combined output as a string.
type CmdFunctionStmt struct {
	base
	Name lexer.Token
	Cmd  string
}

func (*CmdFunctionStmt) stmtNode() {}

// ReturnStmt returns Value (or nil) from the nearest enclosing function.
type ReturnStmt struct {
	base
	Keyword lexer.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}

// BreakStmt exits the nearest enclosing loop.
type BreakStmt struct {
	base
}

func (*BreakStmt) stmtNode() {}

// Program is the parse result: the top-level sequence of statements.
type Program struct {
	Statements []Stmt
}
