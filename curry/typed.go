package curry

import "github.com/on-the-ground/curryfn/tuple"

// Curried0 is a curried nullary function.
type Curried0[R any] struct {
	fn func() R
}

func Curry0[R any](fn func() R) Curried0[R] {
	return Curried0[R]{fn: fn}
}

func (c Curried0[R]) Call() R {
	return c.fn()
}

// Curried1 is a curried unary function.
type Curried1[A, R any] struct {
	fn func(A) R
}

func Curry1[A, R any](fn func(A) R) Curried1[A, R] {
	return Curried1[A, R]{fn: fn}
}

func (c Curried1[A, R]) Call(a A) R {
	return c.fn(a)
}

// Curried2 is a curried binary function. Take1 binds the first argument.
type Curried2[A, B, R any] struct {
	fn func(A, B) R
}

func Curry2[A, B, R any](fn func(A, B) R) Curried2[A, B, R] {
	return Curried2[A, B, R]{fn: fn}
}

func (c Curried2[A, B, R]) Call(a A, b B) R {
	return c.fn(a, b)
}

func (c Curried2[A, B, R]) Take1(a A) Curried1[B, R] {
	return Curry1(func(b B) R { return c.fn(a, b) })
}

// Curried3 is a curried ternary function. TakeK binds the first K arguments.
type Curried3[A, B, C, R any] struct {
	fn func(A, B, C) R
}

func Curry3[A, B, C, R any](fn func(A, B, C) R) Curried3[A, B, C, R] {
	return Curried3[A, B, C, R]{fn: fn}
}

func (c Curried3[A, B, C, R]) Call(a A, b B, cc C) R {
	return c.fn(a, b, cc)
}

func (c Curried3[A, B, C, R]) Take1(a A) Curried2[B, C, R] {
	return Curry2(func(b B, cc C) R { return c.fn(a, b, cc) })
}

func (c Curried3[A, B, C, R]) Take2(a A, b B) Curried1[C, R] {
	return Curry1(func(cc C) R { return c.fn(a, b, cc) })
}

// Curried4 is a curried function of four arguments.
type Curried4[A, B, C, D, R any] struct {
	fn func(A, B, C, D) R
}

func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) Curried4[A, B, C, D, R] {
	return Curried4[A, B, C, D, R]{fn: fn}
}

func (c Curried4[A, B, C, D, R]) Call(a A, b B, cc C, d D) R {
	return c.fn(a, b, cc, d)
}

func (c Curried4[A, B, C, D, R]) Take1(a A) Curried3[B, C, D, R] {
	return Curry3(func(b B, cc C, d D) R { return c.fn(a, b, cc, d) })
}

func (c Curried4[A, B, C, D, R]) Take2(a A, b B) Curried2[C, D, R] {
	return Curry2(func(cc C, d D) R { return c.fn(a, b, cc, d) })
}

func (c Curried4[A, B, C, D, R]) Take3(a A, b B, cc C) Curried1[D, R] {
	return Curry1(func(d D) R { return c.fn(a, b, cc, d) })
}

// Curried5 is a curried function of five arguments.
type Curried5[A, B, C, D, E, R any] struct {
	fn func(A, B, C, D, E) R
}

func Curry5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) Curried5[A, B, C, D, E, R] {
	return Curried5[A, B, C, D, E, R]{fn: fn}
}

func (c Curried5[A, B, C, D, E, R]) Call(a A, b B, cc C, d D, e E) R {
	return c.fn(a, b, cc, d, e)
}

func (c Curried5[A, B, C, D, E, R]) Take1(a A) Curried4[B, C, D, E, R] {
	return Curry4(func(b B, cc C, d D, e E) R { return c.fn(a, b, cc, d, e) })
}

func (c Curried5[A, B, C, D, E, R]) Take2(a A, b B) Curried3[C, D, E, R] {
	return Curry3(func(cc C, d D, e E) R { return c.fn(a, b, cc, d, e) })
}

func (c Curried5[A, B, C, D, E, R]) Take3(a A, b B, cc C) Curried2[D, E, R] {
	return Curry2(func(d D, e E) R { return c.fn(a, b, cc, d, e) })
}

func (c Curried5[A, B, C, D, E, R]) Take4(a A, b B, cc C, d D) Curried1[E, R] {
	return Curry1(func(e E) R { return c.fn(a, b, cc, d, e) })
}

// Chain2 returns fn as a sequence of unary calls.
func Chain2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

func Chain3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Chain2(func(b B, c C) R { return fn(a, b, c) })
	}
}

func Chain4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Chain3(func(b B, c C, d D) R { return fn(a, b, c, d) })
	}
}

func Chain5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return Chain4(func(b B, c C, d D, e E) R { return fn(a, b, c, d, e) })
	}
}

// CurriedN is a curried function over homogeneous arguments. It is the fallback
// for arities the typed families do not cover.
type CurriedN[T, R any] struct {
	fn    func(...T) R
	arity int
	bound []T
}

// CurryN curries fn, calling it once arity arguments have accumulated.
func CurryN[T, R any](fn func(...T) R, arity int) CurriedN[T, R] {
	return CurriedN[T, R]{fn: fn, arity: max(arity, 0)}
}

// Apply adds args to those already bound. When the total reaches the arity,
// fn is called with every accumulated argument and done is true. Otherwise
// next holds the extended chain. c itself is never modified.
func (c CurriedN[T, R]) Apply(args ...T) (next CurriedN[T, R], result R, done bool) {
	all := tuple.Concat(c.bound, args)
	if len(all) >= c.arity {
		return c, c.fn(all...), true
	}
	return CurriedN[T, R]{fn: c.fn, arity: c.arity, bound: all}, result, false
}

// Owed is how many arguments are still required.
func (c CurriedN[T, R]) Owed() int {
	return max(c.arity-len(c.bound), 0)
}
