package tuple

import (
	"golang.org/x/exp/slices"
)

// Pop returns t without its last element.
// ok is false when t is empty.
func Pop[T any](t []T) (head []T, ok bool) {
	if len(t) == 0 {
		return nil, false
	}
	return slices.Clone(t[:len(t)-1]), true
}

// Shift removes prefix from the front of full.
// ok is false unless prefix is literally a prefix of full.
func Shift[T comparable](prefix, full []T) (rest []T, ok bool) {
	if len(prefix) > len(full) || !slices.Equal(prefix, full[:len(prefix)]) {
		return nil, false
	}
	return slices.Clone(full[len(prefix):]), true
}

// Prefixes lists every non-empty prefix of t, longest first.
// It returns nil for an empty t.
func Prefixes[T any](t []T) [][]T {
	if len(t) == 0 {
		return nil
	}
	head, _ := Pop(t)
	return append([][]T{slices.Clone(t)}, Prefixes(head)...)
}

// Partitions lists every split of t into consecutive non-empty groups.
// An empty t has exactly one partition: the one with no groups.
func Partitions[T any](t []T) [][][]T {
	if len(t) == 0 {
		return [][][]T{{}}
	}
	var out [][][]T
	for _, prefix := range Prefixes(t) {
		for _, rest := range Partitions(t[len(prefix):]) {
			out = append(out, append([][]T{prefix}, rest...))
		}
	}
	return out
}

// Concat joins parts into a newly allocated slice.
func Concat[T any](parts ...[]T) []T {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]T, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Reverse returns a reversed copy of t.
func Reverse[T any](t []T) []T {
	out := slices.Clone(t)
	slices.Reverse(out)
	return out
}
