package packed

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"

	"pack.dev/packed/stream"
)

// Bytes returns a coder for a contiguous byte sequence whose length is
// determined by length, per spec §4.3 "Bytes / String / Hex" and §4.4
// "bytes(length, le)". When littleEndian is true, the byte order of the
// payload itself is reversed on the wire (used for little-endian-framed
// fixed-size byte blobs, not to be confused with the length specifier).
func Bytes(length LengthSpec, littleEndian bool) Coder[[]byte] {
	encode := func(w *stream.Writer, v []byte) error {
		data := v
		if littleEndian {
			data = reverse(v)
		}
		switch {
		case length.isUnbounded():
			return w.Bytes(data)
		case length.isTerminator():
			term := length.terminatorBytes()
			if bytes.Contains(data, term) {
				return stream.ErrTerminatorCollision
			}
			if err := w.Bytes(data); err != nil {
				return err
			}
			return w.Bytes(term)
		default:
			if err := length.encodeLength(w, len(data)); err != nil {
				return err
			}
			return w.Bytes(data)
		}
	}
	decode := func(r *stream.Reader) ([]byte, error) {
		var raw []byte
		switch {
		case length.isUnbounded():
			b, err := r.Bytes(r.Remaining(), false)
			if err != nil {
				return nil, err
			}
			raw = b
		case length.isTerminator():
			term := length.terminatorBytes()
			idx, found, err := r.Find(term, r.Pos())
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, stream.ErrNotFound
			}
			b, err := r.Bytes(idx-r.Pos(), false)
			if err != nil {
				return nil, err
			}
			if _, err := r.Bytes(len(term), false); err != nil {
				return nil, err
			}
			raw = b
		default:
			n, err := length.decodeLength(r)
			if err != nil {
				return nil, err
			}
			b, err := r.Bytes(n, false)
			if err != nil {
				return nil, err
			}
			raw = b
		}
		if littleEndian {
			raw = reverse(raw)
		}
		return append([]byte(nil), raw...), nil
	}
	var size func() (int, bool)
	if length.kind == lengthKindConstant {
		size = fixedSize(length.constant)
	}
	return Wrap(encode, decode, size)
}

// errInvalidUTF8 indicates a String coder decoded bytes that are not valid
// UTF-8. errInvalidHex indicates a Hex coder encoded a string that is not
// valid (optionally 0x-prefixed) hex.
var (
	errInvalidUTF8 = errors.New("packed: string field is not valid UTF-8")
	errInvalidHex  = errors.New("packed: hex field is not a valid hex string")
)

// String wraps [Bytes] with a UTF-8 string/[]byte bijection, per spec §4.3
// "string wraps bytes with UTF-8".
func String(length LengthSpec) Coder[string] {
	inner := Bytes(length, false)
	return Wrap(
		func(w *stream.Writer, v string) error {
			return inner.EncodeStream(w, []byte(v))
		},
		func(r *stream.Reader) (string, error) {
			b, err := inner.DecodeStream(r)
			if err != nil {
				return "", err
			}
			if !utf8.Valid(b) {
				return "", errInvalidUTF8
			}
			return string(b), nil
		},
		inner.Size,
	)
}

// Hex wraps [Bytes] with an ASCII hex string/[]byte bijection, per spec
// §4.3 "hex wraps bytes with ASCII hex (with an optional 0x prefix)".
// Encode accepts an optional "0x"/"0X" prefix on the input string; decode
// never emits one.
func Hex(length LengthSpec) Coder[string] {
	inner := Bytes(length, false)
	return Wrap(
		func(w *stream.Writer, v string) error {
			s := strings.TrimPrefix(strings.TrimPrefix(v, "0x"), "0X")
			b, err := hex.DecodeString(s)
			if err != nil {
				return errInvalidHex
			}
			return inner.EncodeStream(w, b)
		},
		func(r *stream.Reader) (string, error) {
			b, err := inner.DecodeStream(r)
			if err != nil {
				return "", err
			}
			return hex.EncodeToString(b), nil
		},
		inner.Size,
	)
}
