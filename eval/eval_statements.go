/*
File    : tron/eval/eval_statements.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tron-lang/tron/natives"
	"github.com/tron-lang/tron/parser"
	"github.com/tron-lang/tron/values"
)

// execStatements runs stmts in order, stopping at the first error (a
// genuine runtime failure or a Break/Return control signal) and
// propagating it.
func (e *Evaluator) execStatements(stmts []parser.Stmt) error {
	for _, s := range stmts {
		if err := e.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// execStmt dispatches a single statement node to its handler.
func (e *Evaluator) execStmt(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := e.evalExpr(s.Expression)
		return err
	case *parser.PrintStmt:
		v, err := e.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		e.print(v.String())
		return nil
	case *parser.InputStmt:
		v, err := e.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprint(e.Out, v.String())
		e.Out.Flush()
		e.In.ReadString('\n')
		return nil
	case *parser.ErrorsStmt:
		v, err := e.evalExpr(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.Out, v.String())
		e.Out.Flush()
		e.Exit(1)
		return nil
	case *parser.ExitsStmt:
		e.Out.Flush()
		e.Exit(1)
		return nil
	case *parser.ImportStmt:
		return e.execImport(s)
	case *parser.VarStmt:
		return e.execVar(s)
	case *parser.BlockStmt:
		return e.execBlock(s)
	case *parser.IfStmt:
		return e.execIf(s)
	case *parser.TryStmt:
		return e.execTry(s)
	case *parser.WhileStmt:
		return e.execWhile(s)
	case *parser.BenchStmt:
		return e.execBench(s)
	case *parser.FunctionStmt:
		return e.execFunction(s)
	case *parser.CmdFunctionStmt:
		return e.execCmdFunction(s)
	case *parser.ReturnStmt:
		if s.Value == nil {
			return &ReturnSignal{Value: values.Nil}
		}
		v, err := e.evalExpr(s.Value)
		if err != nil {
			return err
		}
		return &ReturnSignal{Value: v}
	case *parser.BreakStmt:
		return &BreakSignal{}
	default:
		return runtimeErrorf("eval: unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) execVar(n *parser.VarStmt) error {
	var val values.Value = values.Nil
	if n.Initializer != nil {
		v, err := e.evalExpr(n.Initializer)
		if err != nil {
			return err
		}
		val = v
	}
	e.Env.Define(n.Name.Literal, val)
	return nil
}

// execBlock creates a child environment, runs the contained statements,
// and restores the parent environment on every exit path.
func (e *Evaluator) execBlock(n *parser.BlockStmt) error {
	saved := e.Env
	e.Env = e.Env.Enclose()
	err := e.execStatements(n.Statements)
	e.Env = saved
	return err
}

// execImport evaluates Expression to a path, resolves it against the
// working directory and then, in order, each of ImportPaths, and runs a
// fresh scan-parse-resolve-interpret pipeline on its contents in a new
// interpreter sharing this one's streams. A path that is not a string, or a
// failure to read, parse or run the file, prints an "Error 108:"-prefixed
// message and terminates the process. A runtime error raised while
// evaluating the path expression itself propagates like any other.
func (e *Evaluator) execImport(n *parser.ImportStmt) error {
	pathVal, err := e.evalExpr(n.Expression)
	if err != nil {
		return err
	}
	path, ok := pathVal.(*values.String)
	if !ok {
		e.importFail("expected a string path, got %s", values.TypeName(pathVal))
		return nil
	}

	src, readErr := e.readImportSource(path.Val)
	if readErr != nil {
		e.importFail("cannot read '%s': %s", path.Val, readErr.Error())
		return nil
	}

	p := parser.NewParser(string(src))
	prog := p.Parse()
	if len(p.Errors) > 0 {
		e.importFail("parse error in '%s': %s", path.Val, p.Errors[0])
		return nil
	}

	sub := New()
	sub.Out = e.Out
	sub.In = e.In
	sub.PrintPointer = e.PrintPointer
	sub.Exit = e.Exit
	sub.ImportPaths = e.ImportPaths
	natives.Register(sub.Global, sub.In, sub.Out)
	if err := sub.Run(prog); err != nil {
		e.importFail("%s", err.Error())
		return nil
	}
	return nil
}

// readImportSource tries rawPath against the working directory first,
// then each of ImportPaths in order, joined with rawPath. It returns the
// first successful read, or the working-directory read's error if every
// candidate fails.
func (e *Evaluator) readImportSource(rawPath string) ([]byte, error) {
	src, err := os.ReadFile(rawPath)
	if err == nil {
		return src, nil
	}
	firstErr := err
	for _, root := range e.ImportPaths {
		if src, altErr := os.ReadFile(filepath.Join(root, rawPath)); altErr == nil {
			return src, nil
		}
	}
	return nil, firstErr
}

func (e *Evaluator) importFail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stdout, "Error 108: %s\n", msg)
	e.Out.Flush()
	e.Exit(1)
}
