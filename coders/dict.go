// Package coders provides value-level support coders: bijections and
// helpers meant to be composed with [packed.Apply] or used as arguments to
// [packed.Map]/[packed.MappedTag], rather than byte-level coders in their
// own right (spec.md §2 item 6).
package coders

import (
	"errors"

	"pack.dev/packed"
)

var errInvalidDictPair = errors.New("packed/coders: array-of-pairs element missing key/value or has the wrong type")

// Dict returns a bijection between map[K]V and an array-of-pairs shape
// (each pair a map[string]any{"key":K, "value":V}), for composing a Go map
// through packed.Apply(packed.Array(length, pairCoder), coders.Dict[K, V]()).
func Dict[K comparable, V any]() packed.Bijection[map[K]V, []map[string]any] {
	return packed.Bijection[map[K]V, []map[string]any]{
		To: func(m map[K]V) ([]map[string]any, error) {
			out := make([]map[string]any, 0, len(m))
			for k, v := range m {
				out = append(out, map[string]any{"key": any(k), "value": any(v)})
			}
			return out, nil
		},
		From: func(pairs []map[string]any) (map[K]V, error) {
			out := make(map[K]V, len(pairs))
			for _, p := range pairs {
				k, ok := p["key"].(K)
				if !ok {
					return nil, errInvalidDictPair
				}
				v, ok := p["value"].(V)
				if !ok {
					return nil, errInvalidDictPair
				}
				out[k] = v
			}
			return out, nil
		},
	}
}
