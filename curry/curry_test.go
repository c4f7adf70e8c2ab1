package curry_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/on-the-ground/curryfn/curry"
	"github.com/on-the-ground/curryfn/internal/dyncall"
	"github.com/on-the-ground/curryfn/shared/helper"
	"github.com/on-the-ground/curryfn/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	arity0 = func() bool { return true }
	arity1 = func(a any) any { return a }
	arity2 = func(a, b any) []any { return []any{a, b} }
	arity3 = func(a, b, c any) []any { return []any{a, b, c} }
	arity4 = func(a, b, c, d any) []any { return []any{a, b, c, d} }
	arity5 = func(a, b, c, d, e any) []any { return []any{a, b, c, d, e} }
	arity6 = func(a, b, c, d, e, f any) []any { return []any{a, b, c, d, e, f} }

	arityMax = func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t any) []any {
		return []any{a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t}
	}
)

// feed applies each group in turn, expecting a continuation between groups.
// The groups must spell out args exactly.
func feed(t *testing.T, fn curry.Func, args []any, groups [][]any) any {
	t.Helper()
	var res any = fn
	owed := args
	for i, g := range groups {
		rest, ok := tuple.Shift(g, owed)
		require.Truef(t, ok, "group %d: %v is not a prefix of %v", i, g, owed)
		owed = rest

		next, ok := res.(curry.Func)
		require.Truef(t, ok, "group %d: expected a continuation, got %T", i, res)
		res = next(g...)
	}
	require.Empty(t, owed)
	return res
}

func TestCurry(t *testing.T) {
	add := curry.Curry(func(a, b int) int { return a + b })
	assert.Equal(t, 3, add(1, 2))
	assert.Equal(t, 3, add(1).(curry.Func)(2))

	assert.Equal(t, true, curry.Curry(arity0)())
	assert.Equal(t, "", curry.Curry(arity1)(""))
	assert.IsType(t, curry.Func(nil), curry.Curry(arity2)(""))
	assert.Equal(t, []any{"", 1}, curry.Curry(arity2)("", 1))
	assert.Equal(t, []any{"", 1}, curry.Curry(arity2)("").(curry.Func)(1))

	c3 := curry.Curry(arity3)
	assert.IsType(t, curry.Func(nil), c3(""))
	assert.IsType(t, curry.Func(nil), c3("").(curry.Func)(1))
	assert.Equal(t, []any{"", 1, false}, c3("", 1, false))
}

func TestCurry_CompositionLaw(t *testing.T) {
	fns := []struct {
		name string
		fn   any
		args []any
	}{
		{"arity1", arity1, []any{""}},
		{"arity2", arity2, []any{"", 1}},
		{"arity3", arity3, []any{"", 1, false}},
		{"arity4", arity4, []any{"", 1, false, true}},
		{"arity5", arity5, []any{"", 1, false, true, uint64(0)}},
		{"arity6", arity6, []any{"", 1, false, true, uint64(0), 2.5}},
	}
	for _, tc := range fns {
		t.Run(tc.name, func(t *testing.T) {
			want := dyncall.Of(tc.fn).Call(tc.args)
			for _, groups := range tuple.Partitions(tc.args) {
				assert.Equal(t, want, feed(t, curry.Curry(tc.fn), tc.args, groups), "partition %v", groups)
			}
		})
	}
}

func TestCurry_ArityMax(t *testing.T) {
	args := make([]any, 20)
	for i := range args {
		args[i] = i
	}
	c := curry.Curry(arityMax)
	assert.Equal(t, args, c(args...))
	assert.Equal(t, args, feed(t, c, args, [][]any{args[:1], args[1:19], args[19:]}))

	singles := make([][]any, len(args))
	for i := range args {
		singles[i] = args[i : i+1]
	}
	assert.Equal(t, args, feed(t, c, args, singles))
}

func TestCurry_OverApplicationForwardsEverything(t *testing.T) {
	join := func(sep string, parts ...string) string { return strings.Join(parts, sep) }
	c := curry.New(join, curry.WithArity(3))
	assert.Equal(t, "a-b-c", c("-", "a").(curry.Func)("b", "c"))

	// a fixed signature ignores the surplus
	assert.Equal(t, []any{1, 2}, curry.Curry(arity2)(1, 2, 3))
	assert.Equal(t, []any{1, 2}, curry.Curry(arity2)(1).(curry.Func)(2, 3, 4))
}

func TestCurry_ConvertsNumericArguments(t *testing.T) {
	pow := curry.Curry(math.Pow)
	assert.Equal(t, 8.0, pow(2).(curry.Func)(3))
}

func TestCurry_VariadicArityExcludesTail(t *testing.T) {
	c := curry.Curry(fmt.Sprint)
	// fmt.Sprint has no fixed parameters, so it fires on the first call
	assert.Equal(t, "", c())

	sprintf := curry.Curry(fmt.Sprintf)
	assert.Equal(t, "x=1", sprintf("x=%d", 1))

	waiting := curry.New(fmt.Sprintf, curry.WithArity(2))
	assert.Equal(t, "x=1", waiting("x=%d").(curry.Func)(1))
}

func TestCurry_ZeroArgumentCallKeepsWaiting(t *testing.T) {
	c := curry.Curry(arity2)
	same := c().(curry.Func)
	assert.Equal(t, []any{1, 2}, same(1, 2))
}

func TestCurry_NoSharedMutation(t *testing.T) {
	c := curry.Curry(arity3)
	head := c(1).(curry.Func)

	left := head(2).(curry.Func)
	right := head(5).(curry.Func)

	assert.Equal(t, []any{1, 2, 3}, left(3))
	assert.Equal(t, []any{1, 5, 6}, right(6))
	assert.Equal(t, []any{1, 2, 4}, left(4))
}

func TestCurry_NotAFunctionFailsOnInvoke(t *testing.T) {
	c := curry.Curry(42)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.ErrorIs(t, r.(error), dyncall.ErrNotFunc)
	}()
	c()
}

func TestCurry_PropagatesPanic(t *testing.T) {
	boom := errors.New("boom")
	c := curry.Curry(func(a, b int) int { panic(boom) })
	assert.PanicsWithValue(t, boom, func() { c(1).(curry.Func)(2) })
}

func TestCurry_Concurrent(t *testing.T) {
	c := curry.Curry(func(a, b, c int) int { return a*100 + b*10 + c })
	head := c(1).(curry.Func)

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = head(i%10).(curry.Func)(i % 10).(int)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		assert.Equal(t, 100+(i%10)*11, got)
	}
}

func TestNew_Logger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := curry.New(arity3, curry.WithLogger(zap.New(core)))

	assert.Equal(t, []any{1, 2, 3}, c(1).(curry.Func)(2, 3))

	entries := logs.All()
	require.Len(t, entries, 2)
	first, second := entries[0].ContextMap(), entries[1].ContextMap()
	assert.Equal(t, int64(3), first["arity"])
	assert.Equal(t, int64(1), first["accumulated"])
	assert.Equal(t, false, first["complete"])
	assert.Equal(t, int64(3), second["accumulated"])
	assert.Equal(t, true, second["complete"])
	assert.Equal(t, first["chain_id"], second["chain_id"])
	assert.NotEmpty(t, first["chain_id"])
}

func TestNew_LoggerBelowDebugIsQuiet(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := curry.New(arity2, curry.WithLogger(zap.New(core)), curry.WithLogger(nil))
	assert.Equal(t, []any{1, 2}, c(1, 2))
	assert.Zero(t, logs.Len())
}

func TestWithArity_Negative(t *testing.T) {
	c := curry.New(func(a ...int) int { return len(a) }, curry.WithArity(-3))
	assert.Equal(t, 0, c())
}

func TestResult(t *testing.T) {
	add := curry.Curry(func(a, b int) int { return a + b })

	sum, err := curry.Result[int](add(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, sum)

	_, err = curry.Result[int](add(1))
	assert.ErrorIs(t, err, helper.ErrStillCurried)

	_, err = curry.Result[string](add(1, 2))
	assert.Error(t, err)
}

func TestResult_FuncValuedResultLooksCurried(t *testing.T) {
	inner := curry.Func(func(...any) any { return nil })
	c := curry.Curry(func(int) curry.Func { return inner })

	res := c(1)
	_, err := curry.Result[curry.Func](res)
	assert.ErrorIs(t, err, helper.ErrStillCurried)

	got, ok := res.(curry.Func)
	assert.True(t, ok)
	assert.Nil(t, got())
}
