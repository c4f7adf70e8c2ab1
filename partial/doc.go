// Package partial binds some of a function's arguments ahead of time.
//
// Three strategies are provided, each as a dynamic binder over any function
// value, a typed family for up to five parameters, and a homogeneous variadic
// fallback:
//
//   - Left binds a prefix: Left(fn, a)(b, c) calls fn(a, b, c).
//   - Right binds a suffix, passed trailing-first: Right(fn, c, b)(a) calls fn(a, b, c).
//   - Rest binds the segment after the head: Rest(fn, b)(a, c) calls fn(a, b, c).
//
// Partial, PartialRight and PartialTail are aliases.
//
// The dynamic binders never validate arguments up front. Parameters left
// unsupplied when the call finally happens receive their zero values.
package partial
