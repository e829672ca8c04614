package packed

import (
	"io"

	"pack.dev/packed/stream"
	"pack.dev/packed/vlq"
)

// byteReader adapts a [stream.Reader] to [io.ByteReader], the interface
// vlq.Read requires.
type byteReader struct{ r *stream.Reader }

func (b byteReader) ReadByte() (byte, error) {
	v, err := b.r.Byte(false)
	if err == stream.ErrShortBuffer {
		return 0, io.EOF
	}
	return v, err
}

// byteWriter adapts a [stream.Writer] to [io.ByteWriter].
type byteWriter struct{ w *stream.Writer }

func (b byteWriter) WriteByte(c byte) error { return b.w.Byte(c) }

// Int64VLQ is a [Coder][int64] that frames its value as a variable-length
// quantity (see package vlq) instead of a fixed-width integer. It has no
// fixed size and is meant for use as the coder in [LengthOf], or directly as
// a struct/tuple field, wherever a format prefers a self-terminating length
// encoding over a fixed-width one.
var Int64VLQ Coder[int64] = Wrap(
	func(w *stream.Writer, v int64) error {
		if v < 0 {
			return stream.ErrNegativeLength
		}
		_, err := vlq.Write(byteWriter{w}, uint64(v))
		return err
	},
	func(r *stream.Reader) (int64, error) {
		v, err := vlq.Read[uint64](byteReader{r})
		if err != nil {
			return 0, err
		}
		return int64(v), nil
	},
	noSize,
)
