package packed

import "pack.dev/packed/stream"

// Lazy defers coder construction until first use, enabling mutually
// recursive and self-referential coders (trees, linked lists), per spec
// §4.6 "lazy(thunk)" and §9 "Recursive / cyclic coder definitions". thunk
// is invoked on every encode/decode call, never cached, so a coder that
// embeds itself (directly or through a cycle of Lazy values) never tries to
// build an infinite structure eagerly.
func Lazy[V any](thunk func() Coder[V]) Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		return thunk().EncodeStream(w, v)
	}
	decode := func(r *stream.Reader) (V, error) {
		return thunk().DecodeStream(r)
	}
	return Wrap(encode, decode, nil)
}

// Bijection pairs inverse value↔value conversions, used by [Apply] to
// compose a byte-level coder with an external transform.
type Bijection[V, B any] struct {
	To   func(V) (B, error)
	From func(B) (V, error)
}

// Apply composes inner (a coder over B) with bij, producing a coder over V,
// per spec §4.6 "apply(inner, baseCoder)" (e.g. a bytes coder composed with
// a hex↔bytes bijection yields a hex-string coder).
func Apply[V, B any](inner Coder[B], bij Bijection[V, B]) Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		b, err := bij.To(v)
		if err != nil {
			return err
		}
		return inner.EncodeStream(w, b)
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		b, err := inner.DecodeStream(r)
		if err != nil {
			return zero, err
		}
		return bij.From(b)
	}
	return Wrap(encode, decode, inner.Size)
}

// Validate runs fn on a value on both the encode and decode sides,
// surfacing any error fn returns, per spec §4.6 "validate(inner, fn)".
func Validate[V any](inner Coder[V], fn func(V) error) Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		if err := fn(v); err != nil {
			return err
		}
		return inner.EncodeStream(w, v)
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		v, err := inner.DecodeStream(r)
		if err != nil {
			return zero, err
		}
		if err := fn(v); err != nil {
			return zero, err
		}
		return v, nil
	}
	return Wrap(encode, decode, inner.Size)
}
