package packed

import "pack.dev/packed/stream"

// Flag returns a coder for a zero- or pattern-length boolean field, per
// spec §4.5 "flag(pattern, xor=false)". Encode emits pattern when the
// boolean is true XOR xor, and nothing otherwise. Decode peeks for pattern:
// if matched, it is consumed and the result is true XOR xor (that is, !xor);
// if not matched, nothing is consumed and the result is xor.
func Flag(pattern []byte, xor bool) Coder[bool] {
	encode := func(w *stream.Writer, v bool) error {
		if v != xor {
			return w.Bytes(pattern)
		}
		return nil
	}
	decode := func(r *stream.Reader) (bool, error) {
		if peekMatches(r, pattern) {
			if _, err := r.Bytes(len(pattern), false); err != nil {
				return false, err
			}
			return !xor, nil
		}
		return xor, nil
	}
	var size func() (int, bool)
	if len(pattern) == 0 {
		size = fixedSize(0)
	}
	return Wrap(encode, decode, size)
}
