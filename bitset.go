package packed

import "pack.dev/packed/stream"

// BitSetFlags returns a coder over map[string]bool writing/reading one bit
// per name (in declaration order) through the bit sub-cursor, per spec
// §4.4 "bitset(names, pad)". If pad is true, the field rounds up to a whole
// byte with zero bits after the last name.
func BitSetFlags(names []string, pad bool) Coder[map[string]bool] {
	encode := func(w *stream.Writer, v map[string]bool) error {
		for _, name := range names {
			var bit uint32
			if v[name] {
				bit = 1
			}
			if err := w.Bits(bit, 1); err != nil {
				return stream.WrapPath(name, err)
			}
		}
		if pad {
			if rem := len(names) % 8; rem != 0 {
				if err := w.Bits(0, 8-rem); err != nil {
					return err
				}
			}
		}
		return nil
	}
	decode := func(r *stream.Reader) (map[string]bool, error) {
		out := make(map[string]bool, len(names))
		for _, name := range names {
			bit, err := r.Bits(1)
			if err != nil {
				return nil, stream.WrapPath(name, err)
			}
			out[name] = bit != 0
		}
		if pad {
			if rem := len(names) % 8; rem != 0 {
				if _, err := r.Bits(8 - rem); err != nil {
					return nil, err
				}
			}
		}
		return out, nil
	}
	var size func() (int, bool)
	if pad {
		size = fixedSize((len(names) + 7) / 8)
	}
	return Wrap(encode, decode, size)
}
