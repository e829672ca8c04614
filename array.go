package packed

import (
	"bytes"
	"strconv"

	"pack.dev/packed/stream"
)

// Array returns a coder over []V for a sequence of elements coded by inner,
// bounded by length, per spec §4.4 "array(length, inner)". Behavior
// branches on the kind of length:
//   - coder/path/fixed: the length is written/read (per [LengthSpec]'s own
//     rules), then exactly that many elements follow;
//   - terminator: each element is followed eventually by the terminator
//     pattern; encode fails if any single element's encoded bytes begin
//     with the pattern; decode peeks for the pattern before each element;
//   - unbounded: decode runs to the end of the buffer (stopping early if
//     inner has a fixed size and fewer than that many bytes remain).
func Array[V any](length LengthSpec, inner Coder[V]) Coder[[]V] {
	encode := func(w *stream.Writer, v []V) error {
		w.Push("", &v)
		defer w.Pop()
		switch {
		case length.isTerminator():
			term := length.terminatorBytes()
			for i, elem := range v {
				start := w.Pos()
				if err := inner.EncodeStream(w, elem); err != nil {
					return stream.WrapPath(strconv.Itoa(i), err)
				}
				written := w.BufferSince(start)
				if len(written) >= len(term) && bytes.Equal(written[:len(term)], term) {
					return stream.WrapPath(strconv.Itoa(i), stream.ErrTerminatorCollision)
				}
			}
			return w.Bytes(term)
		case length.isUnbounded():
			for i, elem := range v {
				if err := inner.EncodeStream(w, elem); err != nil {
					return stream.WrapPath(strconv.Itoa(i), err)
				}
			}
			return nil
		default:
			if err := length.encodeLength(w, len(v)); err != nil {
				return err
			}
			for i, elem := range v {
				if err := inner.EncodeStream(w, elem); err != nil {
					return stream.WrapPath(strconv.Itoa(i), err)
				}
			}
			return nil
		}
	}
	decode := func(r *stream.Reader) ([]V, error) {
		var out []V
		r.Push("", &out)
		defer r.Pop()
		switch {
		case length.isTerminator():
			term := length.terminatorBytes()
			for {
				if peekMatches(r, term) {
					if _, err := r.Bytes(len(term), false); err != nil {
						return nil, err
					}
					return out, nil
				}
				elem, err := inner.DecodeStream(r)
				if err != nil {
					return nil, stream.WrapPath(strconv.Itoa(len(out)), err)
				}
				out = append(out, elem)
			}
		case length.isUnbounded():
			innerSize, fixed := inner.Size()
			for {
				if fixed && r.Remaining() < innerSize {
					return out, nil
				}
				if !fixed && r.Remaining() == 0 {
					return out, nil
				}
				elem, err := inner.DecodeStream(r)
				if err != nil {
					return nil, stream.WrapPath(strconv.Itoa(len(out)), err)
				}
				out = append(out, elem)
			}
		default:
			n, err := length.decodeLength(r)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, stream.ErrNegativeLength
			}
			out = make([]V, 0, n)
			for i := 0; i < n; i++ {
				elem, err := inner.DecodeStream(r)
				if err != nil {
					return nil, stream.WrapPath(strconv.Itoa(i), err)
				}
				out = append(out, elem)
			}
			return out, nil
		}
	}
	var size func() (int, bool)
	if length.kind == lengthKindConstant {
		if innerSize, ok := inner.Size(); ok {
			size = func() (int, bool) { return stream.MultipliedSize(innerSize, length.constant) }
		}
	}
	return Wrap(encode, decode, size)
}

// peekMatches reports whether the next len(pattern) bytes at r's current
// position equal pattern, without advancing the cursor.
func peekMatches(r *stream.Reader, pattern []byte) bool {
	b, err := r.Bytes(len(pattern), true)
	if err != nil {
		return false
	}
	return bytes.Equal(b, pattern)
}
