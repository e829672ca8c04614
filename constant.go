package packed

import (
	"errors"
	"reflect"

	"pack.dev/packed/stream"
)

// Unit is the zero-width value type returned by [Magic] and [Nothing].
type Unit = struct{}

var (
	errMagicMismatch    = errors.New("packed: decoded value does not match magic constant")
	errConstantMismatch = errors.New("packed: value does not match constant")
)

// Magic returns a coder that always encodes constant via inner; on decode it
// reads a value via inner and, if check is true, verifies it equals
// constant (bytewise for []byte values, via reflect.DeepEqual for scalars),
// per spec §4.5 "magic". The decoded result is always the unit value.
func Magic[V any](inner Coder[V], constant V, check bool) Coder[Unit] {
	encode := func(w *stream.Writer, _ Unit) error {
		return inner.EncodeStream(w, constant)
	}
	decode := func(r *stream.Reader) (Unit, error) {
		v, err := inner.DecodeStream(r)
		if err != nil {
			return Unit{}, err
		}
		if check && !valuesEqual(v, constant) {
			return Unit{}, errMagicMismatch
		}
		return Unit{}, nil
	}
	return Wrap(encode, decode, inner.Size)
}

func valuesEqual(a, b any) bool {
	if ab, ok := a.([]byte); ok {
		if bb, ok := b.([]byte); ok {
			return EqualBytes(ab, bb)
		}
	}
	return reflect.DeepEqual(a, b)
}

// Constant returns a coder over V that always decodes to c, emits no bytes
// on encode, and rejects any encode call whose value is not equal to c, per
// spec §4.5 "constant".
func Constant[V comparable](c V) Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		if v != c {
			return errConstantMismatch
		}
		return nil
	}
	decode := func(r *stream.Reader) (V, error) {
		return c, nil
	}
	return Wrap(encode, decode, fixedSize(0))
}

// Nothing is a zero-width coder that always succeeds, equivalent to
// magic(bytes(0), EMPTY) per spec §4.5 "nothing".
var Nothing Coder[Unit] = Magic[[]byte](Bytes(FixedLength(0), false), []byte{}, true)
