// Package helper converts the loosely typed results of the dynamic curry and
// partial engines back into static types.
package helper

import (
	"fmt"
)

// ResultAs asserts a dynamic result to the expected type T.
// Returns an error if type assertion fails.
func ResultAs[T any](res any) (T, error) {
	var zero T

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected result type: %T, want %T", res, zero)
	}

	return val, nil
}

// MustResultAs is the panic-on-failure variant of ResultAs.
func MustResultAs[T any](res any) T {
	val, err := ResultAs[T](res)
	if err != nil {
		panic(err)
	}
	return val
}

// ErrStillCurried is returned by Complete when a curried chain needs more arguments.
var ErrStillCurried = fmt.Errorf("curried function is still waiting for arguments")

// Complete asserts that res is a final result rather than a continuation of
// type C, then converts it to T. A final result that is itself a C is
// indistinguishable from a continuation and is rejected.
func Complete[T any, C any](res any) (T, error) {
	var zero T
	if _, pending := res.(C); pending {
		return zero, fmt.Errorf("%w: got %T", ErrStillCurried, res)
	}
	val, err := ResultAs[T](res)
	if err != nil {
		return zero, fmt.Errorf("failed to complete: %w", err)
	}
	return val, nil
}
