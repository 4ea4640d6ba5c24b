/*
File    : tron/natives/natives.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/

// Package natives implements the closed set of built-in functions the
// evaluator wires into the global frame before running a program: sin,
// cos, tan, round, floor, to_degrees, to_radians, input, typeof, len,
// push, join, pop, shift. The parser rejects a `fun` declaration that
// shadows one of these names (see lexer.NATIVE_NAMES), which is kept as
// its own fixed list there rather than imported from here, to avoid a
// parser->natives->callable->parser import cycle.
package natives

import (
	"bufio"
	"fmt"
	"math"
	"strings"

	"github.com/tron-lang/tron/callable"
	"github.com/tron-lang/tron/environment"
	"github.com/tron-lang/tron/values"
)

// Register installs every native as a NativeFunction in env, the designated
// global frame, replacing any natives already installed there. Called when
// an interpreter is built, and again whenever its streams are replaced.
func Register(env *environment.Environment, stdin *bufio.Reader, stdout *bufio.Writer) {
	for _, fn := range all(stdin, stdout) {
		env.Define(fn.Name, fn)
	}
}

func all(stdin *bufio.Reader, stdout *bufio.Writer) []*callable.NativeFunction {
	return []*callable.NativeFunction{
		unaryMath("sin", math.Sin),
		unaryMath("cos", math.Cos),
		unaryMath("tan", math.Tan),
		unaryMath("round", math.Round),
		unaryMath("floor", math.Floor),
		unaryMath("to_degrees", func(x float64) float64 { return x * 180 / math.Pi }),
		unaryMath("to_radians", func(x float64) float64 { return x * math.Pi / 180 }),
		callable.NewNativeFunction("input", 1, func(args []values.Value) (values.Value, error) {
			prompt, err := asString(args[0], "input")
			if err != nil {
				return nil, err
			}
			if stdout != nil {
				fmt.Fprint(stdout, prompt)
				stdout.Flush()
			}
			if stdin == nil {
				return values.NewString(""), nil
			}
			line, _ := stdin.ReadString('\n')
			return values.NewString(strings.TrimRight(line, "\r\n")), nil
		}),
		callable.NewNativeFunction("typeof", 1, func(args []values.Value) (values.Value, error) {
			return values.NewString(typeName(args[0])), nil
		}),
		callable.NewNativeFunction("len", 1, func(args []values.Value) (values.Value, error) {
			switch v := args[0].(type) {
			case *values.Array:
				return values.NewNumber(float64(len(v.Elems))), nil
			case *values.String:
				return values.NewNumber(float64(len(v.Val))), nil
			default:
				return nil, fmt.Errorf("len: expected array or string, got %s", values.TypeName(v))
			}
		}),
		callable.NewNativeFunction("push", 2, func(args []values.Value) (values.Value, error) {
			arr, err := asArray(args[0], "push")
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, args[1])
			return arr, nil
		}),
		callable.NewNativeFunction("pop", 1, func(args []values.Value) (values.Value, error) {
			arr, err := asArray(args[0], "pop")
			if err != nil {
				return nil, err
			}
			if len(arr.Elems) == 0 {
				return nil, fmt.Errorf("pop: array is empty")
			}
			last := arr.Elems[len(arr.Elems)-1]
			arr.Elems = arr.Elems[:len(arr.Elems)-1]
			return last, nil
		}),
		callable.NewNativeFunction("shift", 1, func(args []values.Value) (values.Value, error) {
			arr, err := asArray(args[0], "shift")
			if err != nil {
				return nil, err
			}
			if len(arr.Elems) == 0 {
				return nil, fmt.Errorf("shift: array is empty")
			}
			first := arr.Elems[0]
			arr.Elems = arr.Elems[1:]
			return first, nil
		}),
		callable.NewNativeFunction("join", 2, func(args []values.Value) (values.Value, error) {
			arr, err := asArray(args[0], "join")
			if err != nil {
				return nil, err
			}
			sep, err := asString(args[1], "join")
			if err != nil {
				return nil, err
			}
			parts := make([]string, len(arr.Elems))
			for i, e := range arr.Elems {
				parts[i] = e.String()
			}
			return values.NewString(strings.Join(parts, sep)), nil
		}),
	}
}

func unaryMath(name string, fn func(float64) float64) *callable.NativeFunction {
	return callable.NewNativeFunction(name, 1, func(args []values.Value) (values.Value, error) {
		n, err := asNumber(args[0], name)
		if err != nil {
			return nil, err
		}
		return values.NewNumber(fn(n)), nil
	})
}

func asNumber(v values.Value, who string) (float64, error) {
	n, ok := v.(*values.Number)
	if !ok {
		return 0, fmt.Errorf("%s: expected number, got %s", who, values.TypeName(v))
	}
	return n.Val, nil
}

func asString(v values.Value, who string) (string, error) {
	s, ok := v.(*values.String)
	if !ok {
		return "", fmt.Errorf("%s: expected string, got %s", who, values.TypeName(v))
	}
	return s.Val, nil
}

func asArray(v values.Value, who string) (*values.Array, error) {
	a, ok := v.(*values.Array)
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %s", who, values.TypeName(v))
	}
	return a, nil
}

// typeName reports the typeof() surface name, which spells booleans out as
// "boolean" unlike values.TypeName's internal "bool" shorthand.
func typeName(v values.Value) string {
	if _, ok := v.(*values.Bool); ok {
		return "boolean"
	}
	return values.TypeName(v)
}

// Names lists every native identifier Register installs.
var Names = []string{
	"sin", "cos", "tan", "round", "floor", "to_degrees", "to_radians",
	"input", "typeof", "len", "push", "join", "pop", "shift",
}
