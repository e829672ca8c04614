package coders

import (
	"errors"

	"pack.dev/packed"
	"pack.dev/packed/stream"
)

var errNoMatchingCase = errors.New("packed/coders: no case matched this value")

// MatchCase is one candidate of a [Match] coder: a partial coder together
// with the predicates that decide when it applies.
type MatchCase[V any] struct {
	// Accept reports whether this case should encode v.
	Accept func(v V) bool
	// Recognize reports whether this case should decode, given up to
	// lookahead bytes peeked from the current reader position (fewer if
	// the remaining buffer is shorter; nil if EOF).
	Recognize func(peek []byte) bool
	Coder     packed.Coder[V]
}

// Match returns a coder that dispatches to the first case whose Accept
// predicate matches v on encode, or whose Recognize predicate matches a
// lookahead peek on decode, per spec.md §2 item 6 "match-of-partial-coders"
// — used when a family of wire shapes can be told apart by their leading
// bytes but has no single in-line discriminator field (unlike [packed.Tag]).
func Match[V any](lookahead int, cases []MatchCase[V]) packed.Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		for _, c := range cases {
			if c.Accept(v) {
				return c.Coder.EncodeStream(w, v)
			}
		}
		return errNoMatchingCase
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		n := lookahead
		if rem := r.Remaining(); rem < n {
			n = rem
		}
		var peek []byte
		if n > 0 {
			peek, _ = r.Bytes(n, true)
		}
		for _, c := range cases {
			if c.Recognize(peek) {
				return c.Coder.DecodeStream(r)
			}
		}
		return zero, errNoMatchingCase
	}
	return packed.Wrap(encode, decode, nil)
}
