package packed

import "pack.dev/packed/stream"

// PadByteFunc supplies the i-th padding byte written by [PadLeft] or
// [PadRight]. A nil PadByteFunc defaults to all-zero padding.
type PadByteFunc func(i int) byte

func zeroPad(int) byte { return 0 }

func padAmount(n, blockSize int) int {
	if blockSize <= 0 {
		return 0
	}
	rem := n % blockSize
	if rem == 0 {
		return 0
	}
	return blockSize - rem
}

// PadRight returns a coder that pads inner's encoding with trailing bytes up
// to the next multiple of blockSize, per spec §4.4 "padRight". Unlike
// [PadLeft], inner need not have a fixed size: the padding amount is
// computed from how many bytes inner actually wrote/read. Padding bytes are
// discarded (not validated) on decode.
func PadRight[V any](blockSize int, inner Coder[V], padByte PadByteFunc) Coder[V] {
	if padByte == nil {
		padByte = zeroPad
	}
	encode := func(w *stream.Writer, v V) error {
		start := w.Pos()
		if err := inner.EncodeStream(w, v); err != nil {
			return err
		}
		n := padAmount(w.Pos()-start, blockSize)
		for i := 0; i < n; i++ {
			if err := w.Byte(padByte(i)); err != nil {
				return err
			}
		}
		return nil
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		start := r.Pos()
		v, err := inner.DecodeStream(r)
		if err != nil {
			return zero, err
		}
		n := padAmount(r.Pos()-start, blockSize)
		if n > 0 {
			if _, err := r.Bytes(n, false); err != nil {
				return zero, err
			}
		}
		return v, nil
	}
	return Wrap(encode, decode, nil)
}

// PadLeft returns a coder that pads inner's encoding with leading bytes up
// to the next multiple of blockSize, per spec §4.4 "padLeft". inner MUST
// have a fixed size, since the pad amount is emitted before inner's own
// bytes and so must be known without first encoding inner.
func PadLeft[V any](blockSize int, inner Coder[V], padByte PadByteFunc) Coder[V] {
	innerSize, ok := inner.Size()
	if !ok {
		panic("packed: PadLeft requires inner to have a fixed size")
	}
	if padByte == nil {
		padByte = zeroPad
	}
	n := padAmount(innerSize, blockSize)
	encode := func(w *stream.Writer, v V) error {
		for i := 0; i < n; i++ {
			if err := w.Byte(padByte(i)); err != nil {
				return err
			}
		}
		return inner.EncodeStream(w, v)
	}
	decode := func(r *stream.Reader) (V, error) {
		var zero V
		if n > 0 {
			if _, err := r.Bytes(n, false); err != nil {
				return zero, err
			}
		}
		return inner.DecodeStream(r)
	}
	return Wrap(encode, decode, func() (int, bool) { return stream.CombinedSize(n, innerSize) })
}
