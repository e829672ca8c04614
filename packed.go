// Package packed implements a composable binary encoding/decoding toolkit: a
// small set of primitive coders and combinators that can be assembled
// declaratively into a single [Coder] for any binary format. Users have
// described formats from Bitcoin Script to CBOR to PGP/SSH armor with this
// kind of library; this package provides the combinator engine such formats
// are built on top of — the uniform coder contract, the streaming
// reader/writer (package [pack.dev/packed/stream]), and every built-in
// combinator.
//
// # Coders
//
// A [Coder][V] pairs an encoder and a decoder for values of type V. Coders
// are built by composing the factory functions in this package: [Struct],
// [Tuple], [Array], [Prefix], [Pointer], and so on, starting from the
// primitive coders ([U8], [U16LE], [Bool], [Bytes], [String], ...). The
// result is immutable once built and may be shared across goroutines,
// provided each call to [Encode] or [Decode] uses its own [stream.Reader] or
// [stream.Writer] (constructed internally).
//
// # Heterogeneous composition
//
// [Struct] and [Tuple] compose coders of different value types into a
// single coder over map[string]any or []any. Use [Any] to lift a typed
// Coder[T] into a Coder[any] field.
package packed

import "pack.dev/packed/stream"

// Coder is the pair of encode/decode operations described by spec §3. A
// Coder MAY expose a fixed Size when it always consumes/produces exactly
// that many bytes.
type Coder[V any] interface {
	// EncodeStream writes v to w.
	EncodeStream(w *stream.Writer, v V) error
	// DecodeStream reads a V from r.
	DecodeStream(r *stream.Reader) (V, error)
	// Size returns the coder's fixed size in bytes and true, or (0, false)
	// if the coder's size is not statically known.
	Size() (int, bool)
}

// funcCoder adapts a trio of plain functions into a [Coder], the way
// factories in this package build their return values. This is the
// "wrap a streaming coder" helper from spec §6, generalized to be the
// common constructor every factory in this package funnels through.
type funcCoder[V any] struct {
	encode func(w *stream.Writer, v V) error
	decode func(r *stream.Reader) (V, error)
	size   func() (int, bool)
}

func (c funcCoder[V]) EncodeStream(w *stream.Writer, v V) error { return c.encode(w, v) }
func (c funcCoder[V]) DecodeStream(r *stream.Reader) (V, error) { return c.decode(r) }
func (c funcCoder[V]) Size() (int, bool) {
	if c.size == nil {
		return 0, false
	}
	return c.size()
}

// Wrap builds a [Coder] from streaming encode/decode functions, optionally
// with a fixed-size reporter. size may be nil if the coder has no fixed
// size.
func Wrap[V any](
	encode func(w *stream.Writer, v V) error,
	decode func(r *stream.Reader) (V, error),
	size func() (int, bool),
) Coder[V] {
	return funcCoder[V]{encode: encode, decode: decode, size: size}
}

// fixedSize returns a Size function reporting a constant n.
func fixedSize(n int) func() (int, bool) {
	return func() (int, bool) { return n, true }
}

// noSize reports that a coder has no fixed size.
func noSize() (int, bool) { return 0, false }

// Encode serializes v using c, returning the finalized byte sequence. This
// is the top-level convenience entry point from spec §6.
func Encode[V any](c Coder[V], v V) ([]byte, error) {
	w := stream.NewWriter()
	if err := c.EncodeStream(w, v); err != nil {
		return nil, stream.WrapPath("", err)
	}
	buf, err := w.Finish()
	if err != nil {
		return nil, stream.WrapPath("", err)
	}
	return buf, nil
}

// Decode parses a V from data using c. Unless opts disable the check, the
// entire buffer must be consumed by the decode (spec §4.1 "finish").
func Decode[V any](c Coder[V], data []byte, opts ...stream.Options) (V, error) {
	var o stream.Options
	if len(opts) > 0 {
		o = opts[0]
	}
	r := stream.NewReader(data, o)
	v, err := c.DecodeStream(r)
	if err != nil {
		var zero V
		return zero, stream.WrapPath("", err)
	}
	if err := r.Finish(); err != nil {
		var zero V
		return zero, stream.WrapPath("", err)
	}
	return v, nil
}

// Any lifts a typed coder into a Coder[any], for use as a [Field] or
// [Variant] payload alongside coders of other value types.
func Any[V any](c Coder[V]) Coder[any] {
	return funcCoder[any]{
		encode: func(w *stream.Writer, v any) error {
			tv, ok := v.(V)
			if !ok {
				var zero V
				return stream.WrapPath("", &typeError{want: zero, got: v})
			}
			return c.EncodeStream(w, tv)
		},
		decode: func(r *stream.Reader) (any, error) {
			return c.DecodeStream(r)
		},
		size: c.Size,
	}
}

type typeError struct {
	want any
	got  any
}

func (e *typeError) Error() string {
	return "packed: value has wrong type for coder"
}
