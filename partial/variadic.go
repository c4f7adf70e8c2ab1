package partial

import "github.com/on-the-ground/curryfn/tuple"

// LeftN is Left for functions over homogeneous arguments.
func LeftN[T, R any](fn func(...T) R, args ...T) func(...T) R {
	bound := tuple.Concat(args)
	return func(rest ...T) R {
		return fn(tuple.Concat(bound, rest)...)
	}
}

// RightN is Right for functions over homogeneous arguments. args are given
// trailing-first.
func RightN[T, R any](fn func(...T) R, args ...T) func(...T) R {
	bound := tuple.Reverse(args)
	return func(rest ...T) R {
		return fn(tuple.Concat(rest, bound)...)
	}
}

// RestN is Rest for functions over homogeneous arguments.
func RestN[T, R any](fn func(...T) R, tail ...T) func(T, ...T) R {
	bound := tuple.Concat(tail)
	return func(head T, rest ...T) R {
		return fn(tuple.Concat([]T{head}, bound, rest)...)
	}
}
