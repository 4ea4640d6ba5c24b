/*
File    : tron/natives/natives_test.go
Author  : Tron contributors
Contact : https://github.com/tron-lang/tron
*/
package natives

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tron-lang/tron/callable"
	"github.com/tron-lang/tron/environment"
	"github.com/tron-lang/tron/values"
)

func lookup(t *testing.T, env *environment.Environment, name string) *callable.NativeFunction {
	t.Helper()
	v, ok := env.Get(name)
	require.True(t, ok, "native %s not registered", name)
	fn, ok := v.(*callable.NativeFunction)
	require.True(t, ok)
	return fn
}

func TestRegister_InstallsAllNatives(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	for _, name := range Names {
		lookup(t, env, name)
	}
}

func TestRound_Floor(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)

	round := lookup(t, env, "round")
	result, err := round.Call([]values.Value{values.NewNumber(2.6)})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.(*values.Number).Val)

	floor := lookup(t, env, "floor")
	result, err = floor.Call([]values.Value{values.NewNumber(2.6)})
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.(*values.Number).Val)
}

func TestLen_ArrayAndString(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	lenFn := lookup(t, env, "len")

	result, err := lenFn.Call([]values.Value{values.NewString("hello")})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.(*values.Number).Val)

	arr := values.NewArray([]values.Value{values.NewNumber(1), values.NewNumber(2)})
	result, err = lenFn.Call([]values.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.(*values.Number).Val)
}

func TestPush_MutatesInPlace(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	push := lookup(t, env, "push")

	arr := values.NewArray([]values.Value{values.NewNumber(1)})
	_, err := push.Call([]values.Value{arr, values.NewNumber(2)})
	require.NoError(t, err)
	assert.Len(t, arr.Elems, 2)
	assert.Equal(t, 2.0, arr.Elems[1].(*values.Number).Val)
}

func TestPop_ReturnsRemovedTail(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	pop := lookup(t, env, "pop")

	arr := values.NewArray([]values.Value{values.NewNumber(1), values.NewNumber(2)})
	result, err := pop.Call([]values.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.(*values.Number).Val)
	assert.Len(t, arr.Elems, 1)
}

func TestShift_ReturnsRemovedHead(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	shift := lookup(t, env, "shift")

	arr := values.NewArray([]values.Value{values.NewNumber(1), values.NewNumber(2)})
	result, err := shift.Call([]values.Value{arr})
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.(*values.Number).Val)
	assert.Len(t, arr.Elems, 1)
}

func TestJoin(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	join := lookup(t, env, "join")

	arr := values.NewArray([]values.Value{values.NewNumber(1), values.NewString("x")})
	result, err := join.Call([]values.Value{arr, values.NewString(", ")})
	require.NoError(t, err)
	assert.Equal(t, "1, x", result.(*values.String).Val)
}

func TestTypeof_BooleanSpelledOut(t *testing.T) {
	env := environment.New()
	Register(env, nil, nil)
	typeofFn := lookup(t, env, "typeof")

	result, err := typeofFn.Call([]values.Value{values.True})
	require.NoError(t, err)
	assert.Equal(t, "boolean", result.(*values.String).Val)

	result, err = typeofFn.Call([]values.Value{values.NewNumber(1)})
	require.NoError(t, err)
	assert.Equal(t, "number", result.(*values.String).Val)
}

func TestInput_ReadsOneLineAndWritesPrompt(t *testing.T) {
	env := environment.New()
	stdin := bufio.NewReader(strings.NewReader("hello world\n"))
	var out strings.Builder
	stdout := bufio.NewWriter(&out)
	Register(env, stdin, stdout)

	input := lookup(t, env, "input")
	result, err := input.Call([]values.Value{values.NewString("name: ")})
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.(*values.String).Val)
	assert.Equal(t, "name: ", out.String())
}
