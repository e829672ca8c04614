package coders

import "pack.dev/packed"

// Reverse returns a self-inverse bijection reversing element order, for
// composing through packed.Apply when a sequence needs little-endian
// element ordering that [packed.Array]'s own length-specifier machinery
// does not cover (e.g. a fixed array of multi-byte structs read in reverse
// declaration order), per spec.md §2 item 6 "reverse".
func Reverse[T any]() packed.Bijection[[]T, []T] {
	rev := func(in []T) ([]T, error) {
		out := make([]T, len(in))
		for i, v := range in {
			out[len(in)-1-i] = v
		}
		return out, nil
	}
	return packed.Bijection[[]T, []T]{To: rev, From: rev}
}
