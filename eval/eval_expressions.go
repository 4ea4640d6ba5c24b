/*
File    : tron/eval/eval_expressions.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"math/rand"

	"github.com/tron-lang/tron/callable"
	"github.com/tron-lang/tron/lexer"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// evalExpr dispatches an expression node to its evaluation, returning the
// resulting value or a *RuntimeError riding the error channel.
func (e *Evaluator) evalExpr(expr parser.Expr) (values.Value, error) {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		return e.evalLiteral(n)
	case *parser.VariableExpr:
		return e.lookupVariable(n, n.Name)
	case *parser.AssignExpr:
		return e.evalAssign(n)
	case *parser.UnaryExpr:
		return e.evalUnary(n)
	case *parser.BinaryExpr:
		return e.evalBinary(n)
	case *parser.LogicalExpr:
		return e.evalLogical(n)
	case *parser.PipeExpr:
		return e.evalPipe(n)
	case *parser.GroupingExpr:
		return e.evalExpr(n.Inner)
	case *parser.CallExpr:
		return e.evalCall(n)
	case *parser.AnonFunctionExpr:
		return e.evalAnonFunction(n)
	case *parser.GetExpr:
		return e.evalGet(n)
	case *parser.SetExpr:
		return e.evalSet(n)
	case *parser.ArrayExpr:
		return e.evalArray(n)
	case *parser.IndexExpr:
		return e.evalIndex(n)
	default:
		return nil, runtimeErrorf("eval: unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(n *parser.LiteralExpr) (values.Value, error) {
	switch n.Token.Type {
	case lexer.NUMBER_LIT:
		f, err := parseNumberLiteral(n.Token.Literal)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(f), nil
	case lexer.STRING_LIT:
		return values.NewString(stripEnclosingQuotes(n.Token.Literal)), nil
	case lexer.TRUE_KEY:
		return values.True, nil
	case lexer.FALSE_KEY:
		return values.False, nil
	case lexer.NIL_KEY:
		return values.Nil, nil
	default:
		return nil, runtimeErrorAt(n.Token.Line, "eval: unrecognized literal token %s", n.Token.Type)
	}
}

// lookupVariable reads node's resolved depth (if any) and fetches the
// name in tok accordingly, falling back to a full-chain search (ending at
// global) when the reference was left unresolved by the resolver.
func (e *Evaluator) lookupVariable(node parser.Node, tok lexer.Token) (values.Value, error) {
	name := tok.Literal
	if depth, ok := e.Depths[node.ID()]; ok {
		if v, ok := e.Env.GetAt(depth, name); ok {
			return v, nil
		}
		return nil, runtimeErrorAt(tok.Line, "undefined variable '%s'", name)
	}
	if v, ok := e.Env.Get(name); ok {
		return v, nil
	}
	return nil, runtimeErrorAt(tok.Line, "undefined variable '%s'", name)
}

func (e *Evaluator) evalAssign(n *parser.AssignExpr) (values.Value, error) {
	val, err := e.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	name := n.Name.Literal
	if depth, ok := e.Depths[n.ID()]; ok {
		if !e.Env.AssignAt(depth, name, val) {
			return nil, runtimeErrorAt(n.Name.Line, "undefined variable '%s'", name)
		}
		return val, nil
	}
	if !e.Env.Assign(name, val) {
		return nil, runtimeErrorAt(n.Name.Line, "undefined variable '%s'", name)
	}
	return val, nil
}

func (e *Evaluator) evalUnary(n *parser.UnaryExpr) (values.Value, error) {
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	line := n.Op.Line
	switch n.Op.Type {
	case lexer.MINUS_OP:
		num, err := asNumber(right, "-", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(-num), nil
	case lexer.NOT_OP:
		return values.BoolOf(!values.IsTruthy(right)), nil
	case lexer.INCREMENT_OP:
		num, err := asNumber(right, "++", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(num + 1), nil
	case lexer.DECREMENT_OP:
		num, err := asNumber(right, "--", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(num - 1), nil
	case lexer.MOD_OP:
		num, err := asNumber(right, "%", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(num / 100), nil
	default:
		return nil, runtimeErrorAt(line, "eval: unrecognized unary operator %s", n.Op.Type)
	}
}

func (e *Evaluator) evalBinary(n *parser.BinaryExpr) (values.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	line := n.Op.Line

	switch n.Op.Type {
	case lexer.PLUS_OP, lexer.PLUS_ASSIGN:
		if ls, ok := left.(*values.String); ok {
			return values.NewString(ls.Val + right.String()), nil
		}
		if rs, ok := right.(*values.String); ok {
			return values.NewString(left.String() + rs.Val), nil
		}
		l, r, err := bothNumbers(left, right, "+", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l + r), nil
	case lexer.MINUS_OP, lexer.MINUS_ASSIGN:
		l, r, err := bothNumbers(left, right, "-", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l - r), nil
	case lexer.MUL_OP:
		l, r, err := bothNumbers(left, right, "*", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l * r), nil
	case lexer.DIV_OP:
		l, r, err := bothNumbers(left, right, "/", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l / r), nil
	case lexer.CARET_OP:
		l, r, err := bothNumbers(left, right, "^", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(powf(l, r)), nil
	case lexer.CUBE_OP:
		l, _, err := bothNumbers(left, right, "cube", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l * l * l), nil
	case lexer.ROOT_OP:
		l, r, err := bothNumbers(left, right, "root", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(powf(l, 1/r)), nil
	case lexer.CUBICROOT_OP:
		l, _, err := bothNumbers(left, right, "cubicroot", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(powf(l, 1.0/3.0)), nil
	case lexer.RANDOM_OP:
		l, r, err := bothNumbers(left, right, "random", line)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(l + rand.Float64()*(r-l)), nil
	case lexer.GT_OP:
		l, r, err := bothNumbers(left, right, ">", line)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(l > r), nil
	case lexer.GE_OP:
		l, r, err := bothNumbers(left, right, ">=", line)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(l >= r), nil
	case lexer.LT_OP:
		l, r, err := bothNumbers(left, right, "<", line)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(l < r), nil
	case lexer.LE_OP:
		l, r, err := bothNumbers(left, right, "<=", line)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(l <= r), nil
	case lexer.EQ_OP:
		return values.BoolOf(values.Equal(left, right)), nil
	case lexer.NE_OP:
		return values.BoolOf(!values.Equal(left, right)), nil
	default:
		return nil, runtimeErrorAt(line, "eval: unrecognized binary operator %s", n.Op.Type)
	}
}

func (e *Evaluator) evalLogical(n *parser.LogicalExpr) (values.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}

	switch n.Op.Type {
	case lexer.AND_KEY:
		if !values.IsTruthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right)
	case lexer.OR_KEY:
		if values.IsTruthy(left) {
			return left, nil
		}
		return e.evalExpr(n.Right)
	case lexer.NOR_KEY:
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(!values.IsTruthy(left) && !values.IsTruthy(right)), nil
	case lexer.XOR_KEY:
		right, err := e.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return values.BoolOf(values.IsTruthy(left) != values.IsTruthy(right)), nil
	default:
		return nil, runtimeErrorAt(n.Op.Line, "eval: unrecognized logical operator %s", n.Op.Type)
	}
}

// evalPipe desugars `x | f` into a call `f(x)`.
func (e *Evaluator) evalPipe(n *parser.PipeExpr) (values.Value, error) {
	arg, err := e.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	callee, err := e.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	return e.invoke(callee, []values.Value{arg}, 0)
}

func (e *Evaluator) evalCall(n *parser.CallExpr) (values.Value, error) {
	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return e.invoke(callee, args, n.Paren.Line)
}

// invoke dispatches a call across the three Callable variants. line is the
// call site's closing-paren line, 0 when invoked from a pipe (no paren
// token to anchor on).
func (e *Evaluator) invoke(callee values.Value, args []values.Value, line int) (values.Value, error) {
	switch fn := callee.(type) {
	case *callable.UserFunction:
		if len(args) != fn.Arity() {
			return nil, runtimeErrorAt(line, "wrong number of arguments: expected %d, got %d", fn.Arity(), len(args))
		}
		return fn.Call(args)
	case *callable.NativeFunction:
		if len(args) != fn.Arity() {
			return nil, runtimeErrorAt(line, "wrong number of arguments: expected %d, got %d", fn.Arity(), len(args))
		}
		v, err := fn.Call(args)
		if err != nil {
			return nil, runtimeErrorAt(line, "%s", err.Error())
		}
		return v, nil
	case *callable.CommandFunction:
		if len(args) != 0 {
			return nil, runtimeErrorAt(line, "wrong number of arguments: expected 0, got %d", len(args))
		}
		v, err := fn.Call()
		if err != nil {
			return nil, runtimeErrorAt(line, "command '%s' failed: %s", fn.Name, err.Error())
		}
		return v, nil
	default:
		return nil, runtimeErrorAt(line, "not a callable value")
	}
}

func (e *Evaluator) evalAnonFunction(n *parser.AnonFunctionExpr) (values.Value, error) {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Literal
	}
	return callable.NewUserFunction("", params, n.Body, e.Env, e), nil
}
