/*
File    : tron/eval/evaluator_test.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tron-lang/tron/parser"
)

// run parses and evaluates src, returning captured stdout and any error
// from the top-level run.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.Empty(t, p.Errors)

	var buf bytes.Buffer
	ev := NewWithIO(&buf, strings.NewReader(""))
	err := ev.Run(prog)
	return buf.String(), err
}

func TestEval_PrintUsesDefaultPointer(t *testing.T) {
	out, err := run(t, `print 1 + 2;`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 3\n", out)
}

func TestEval_BlockScopeShadowing(t *testing.T) {
	out, err := run(t, `
		var x = 1;
		start
			var x = 2;
			print x;
		end
		print x;
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 2\n ➤ 1\n", out)
}

func TestEval_ClosureCapturesEnclosingScope(t *testing.T) {
	out, err := run(t, `
		fun adder(n) start
			fun inner(x) start
				return x + n;
			end
			return inner;
		end
		var a = adder(10);
		print a(5);
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 15\n", out)
}

func TestEval_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while i < 3 start
			print i;
			i = i + 1;
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 0\n ➤ 1\n ➤ 2\n", out)
}

func TestEval_ForDesugarsToWhile(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 0\n ➤ 1\n ➤ 2\n", out)
}

func TestEval_BreakExitsInnermostLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while true start
			if i == 2 start break; end
			print i;
			i = i + 1;
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 0\n ➤ 1\n", out)
}

func TestEval_TryCatchSwallowsRuntimeErrorOnce(t *testing.T) {
	out, err := run(t, `
		try start
			undefined_var;
		end catch start
			print "caught";
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ caught\n", out)
}

func TestEval_TryRunsBodyExactlyOnce(t *testing.T) {
	out, err := run(t, `
		var count = 0;
		try start
			count = count + 1;
		end catch start
			print "unreachable";
		end
		print count;
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 1\n", out)
}

func TestEval_ArrayPushLenIndex(t *testing.T) {
	out, err := run(t, `
		var a = [1,2,3];
		push(a, 4);
		print len(a);
		print a[3];
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 4\n ➤ 4\n", out)
}

func TestEval_ArrayAliasingIsObservableAcrossBindings(t *testing.T) {
	out, err := run(t, `
		var a = [1];
		var b = a;
		push(b, 2);
		print len(a);
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 2\n", out)
}

func TestEval_StringConcatWithPlus(t *testing.T) {
	out, err := run(t, `print "hello " + "world";`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ hello world\n", out)
}

func TestEval_PercentUnaryConvertsToFraction(t *testing.T) {
	out, err := run(t, `print %50;`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 0.5\n", out)
}

func TestEval_AndOrShortCircuit(t *testing.T) {
	out, err := run(t, `
		var calls = 0;
		fun sideEffect() start
			calls = calls + 1;
			return true;
		end
		print false and sideEffect();
		print calls;
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ false\n ➤ 0\n", out)
}

func TestEval_PipeDesugarsToCall(t *testing.T) {
	out, err := run(t, `
		fun double(x) start
			return x * 2;
		end
		print 5 | double;
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ 10\n", out)
}

func TestEval_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
}

func TestEval_ZeroIsFalsyInIf(t *testing.T) {
	out, err := run(t, `
		if 0 start
			print "wrong";
		end else start
			print "right";
		end
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ right\n", out)
}

func TestEval_UndefinedVariableErrorIsLineAnchored(t *testing.T) {
	_, err := run(t, "\n\nprint nope;")
	require.Error(t, err)
	assert.Equal(t, "Line 3: undefined variable 'nope'", err.Error())
}

func TestEval_TypeMismatchErrorIsLineAnchored(t *testing.T) {
	_, err := run(t, "\nprint 1 + true;")
	require.Error(t, err)
	assert.Equal(t, "Line 2: operator +: expected number, got bool", err.Error())
}

func TestEval_ImportPathsIsSearchedWhenCwdMiss(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "greet.tron"), []byte(`print "hi";`), 0o644))

	var buf bytes.Buffer
	ev := NewWithIO(&buf, strings.NewReader(""))
	ev.ImportPaths = []string{dir}
	ev.Exit = func(int) { t.Fatal("import should not fail") }

	p := parser.NewParser(`import "greet.tron";`)
	prog := p.Parse()
	require.Empty(t, p.Errors)
	require.NoError(t, ev.Run(prog))
	assert.Equal(t, " ➤ hi\n", buf.String())
}

func TestEval_ZeroIsFalsyInWhile(t *testing.T) {
	out, err := run(t, `
		while 0 start
			print "unreachable";
		end
		print "done";
	`)
	require.NoError(t, err)
	assert.Equal(t, " ➤ done\n", out)
}
