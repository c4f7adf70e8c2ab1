package partial

import (
	"github.com/on-the-ground/curryfn/internal/dyncall"
	"github.com/on-the-ground/curryfn/tuple"
)

// Func is the loosely typed function returned by the dynamic binders. It is
// the same type as curry.Func.
type Func = dyncall.Func

// Left returns a function that calls fn with args followed by its own arguments.
func Left(fn any, args ...any) Func {
	target := dyncall.Of(fn)
	bound := tuple.Concat(args)
	return func(rest ...any) any {
		return target.Call(tuple.Concat(bound, rest))
	}
}

// Right returns a function that calls fn with its own arguments followed by
// args in reverse: args[0] fills the last parameter, args[1] the one before.
func Right(fn any, args ...any) Func {
	target := dyncall.Of(fn)
	bound := tuple.Reverse(args)
	return func(rest ...any) any {
		return target.Call(tuple.Concat(rest, bound))
	}
}

// Rest returns a function that calls fn with its first argument, then tail,
// then the remainder of its own arguments.
func Rest(fn any, tail ...any) Func {
	target := dyncall.Of(fn)
	bound := tuple.Concat(tail)
	return func(rest ...any) any {
		if len(rest) == 0 {
			// head is a gap
			return target.Call(tuple.Concat([]any{nil}, bound))
		}
		return target.Call(tuple.Concat(rest[:1], bound, rest[1:]))
	}
}

// Partial is Left.
func Partial(fn any, args ...any) Func {
	return Left(fn, args...)
}

// PartialRight is Right.
func PartialRight(fn any, args ...any) Func {
	return Right(fn, args...)
}

// PartialTail is Rest.
func PartialTail(fn any, tail ...any) Func {
	return Rest(fn, tail...)
}
