package packed

import "pack.dev/packed/stream"

// Pointer returns a coder that encodes inner's value out-of-line, writing
// only a fixed-width placeholder in place, per spec §4.7
// "pointer(placeholderCoder, inner, sized)". placeholderCoder MUST have a
// fixed size, since the Writer's deferred-pointer list patches exactly that
// many bytes once the pointee's final offset is known (spec §9 "Deferred
// pointer resolution").
//
// Array-of-pointers layout (spec §9 open question 1): this implementation
// always produces the grouped layout (ptr0 ptr1 ... val0 val1 ...), not the
// interleaved one, because every pointer registers its pointee on the
// shared Writer's deferred list and all deferred pointees are appended
// together at the single top-level Finish call — see DESIGN.md.
func Pointer[V any](placeholderCoder Coder[int64], inner Coder[V], sized bool) Coder[V] {
	width, ok := placeholderCoder.Size()
	if !ok {
		panic("packed: pointer placeholder coder must have a fixed size")
	}
	encode := func(w *stream.Writer, v V) error {
		sub := stream.NewWriter()
		if err := inner.EncodeStream(sub, v); err != nil {
			return err
		}
		pointee, err := sub.Finish()
		if err != nil {
			return err
		}
		placeholderOffset := w.Pos()
		return w.RegisterPointer(width, pointee, func(ww *stream.Writer, pointeeOffset int) {
			pw := stream.NewWriter()
			_ = placeholderCoder.EncodeStream(pw, int64(pointeeOffset))
			buf, _ := pw.Finish()
			ww.PatchBytes(placeholderOffset, buf)
		})
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		p, err := placeholderCoder.DecodeStream(r)
		if err != nil {
			return zero, err
		}
		if p < 0 {
			return zero, stream.ErrNegativeLength
		}
		if err := r.EnablePtr(); err != nil {
			return zero, err
		}
		sub, err := r.OffsetReader(int(p))
		if err != nil {
			return zero, err
		}
		return inner.DecodeStream(sub)
	}
	var size func() (int, bool)
	if sized {
		size = fixedSize(width)
	}
	return Wrap(encode, decode, size)
}
