// Package tuple provides the small slice algebra the curry engine relies on to
// reason about which arguments are still owed.
//
// A curried function of arity n accepts, at every step, any non-empty leading
// chunk of the parameters it still expects, and continues with whatever is left.
// The helpers here compute exactly those pieces:
//
//   - Pop: drop the last element
//   - Shift: strip a literal prefix, or report that it is not one
//   - Prefixes: every non-empty leading chunk, longest first
//   - Partitions: every way to split a sequence into consecutive non-empty chunks
//
// The engines themselves only need Pop, Concat and Reverse. Shift, Prefixes
// and Partitions are for callers that want to enumerate or check argument
// splits, such as tests of the curry composition law.
//
// Concat and Reverse always return fresh slices so a caller can never mutate
// arguments captured by an earlier closure.
package tuple
