package packed

import "pack.dev/packed/stream"

// Prefix returns a coder that frames inner's encoding with a length
// specifier, per spec §4.4 "prefix(length, inner)". Encode serializes inner
// into a standalone Writer, then frames its bytes with length. Decode
// extracts exactly that many framed bytes and decodes inner from an
// independent Reader that must fully consume them (its Finish is called).
// Because the frame is self-contained, pointers inside inner resolve
// against the frame's own bytes, not the enclosing buffer.
func Prefix[V any](length LengthSpec, inner Coder[V]) Coder[V] {
	encode := func(w *stream.Writer, v V) error {
		sub := stream.NewWriter()
		if err := inner.EncodeStream(sub, v); err != nil {
			return err
		}
		body, err := sub.Finish()
		if err != nil {
			return err
		}
		if err := length.encodeLength(w, len(body)); err != nil {
			return err
		}
		return w.Bytes(body)
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		var body []byte
		var err error
		switch {
		case length.isUnbounded():
			body, err = r.Bytes(r.Remaining(), false)
		case length.isTerminator():
			term := length.terminatorBytes()
			idx, found, ferr := r.Find(term, r.Pos())
			if ferr != nil {
				return zero, ferr
			}
			if !found {
				return zero, stream.ErrNotFound
			}
			body, err = r.Bytes(idx-r.Pos(), false)
			if err == nil {
				_, err = r.Bytes(len(term), false)
			}
		default:
			var n int
			n, err = length.decodeLength(r)
			if err == nil {
				body, err = r.Bytes(n, false)
			}
		}
		if err != nil {
			return zero, err
		}
		sub := stream.NewReader(body, stream.Options{})
		v, err := inner.DecodeStream(sub)
		if err != nil {
			return zero, err
		}
		if err := sub.Finish(); err != nil {
			return zero, err
		}
		return v, nil
	}
	return Wrap(encode, decode, nil)
}
