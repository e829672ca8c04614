package packed

import "pack.dev/packed/stream"

// BitField returns a coder for an n-bit unsigned field (1 <= n <= 32) read
// and written through the bit sub-cursor (spec §4.3 "Bits"). A struct
// mixing BitField with byte-level fields must round off to a whole byte
// before the next byte-level field; the Reader/Writer enforce this.
func BitField(n int) Coder[uint32] {
	encode := func(w *stream.Writer, v uint32) error {
		return w.Bits(v, n)
	}
	decode := func(r *stream.Reader) (uint32, error) {
		return r.Bits(n)
	}
	return Wrap(encode, decode, nil)
}
