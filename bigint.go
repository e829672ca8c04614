package packed

import (
	"math/big"

	"github.com/holiman/uint256"
	"pack.dev/packed/stream"
)

// bigIntBytes renders v as big-endian two's-complement (or plain magnitude,
// if !signed) bytes. If sized, the result is always exactly width bytes,
// failing if v does not fit. If !sized, the result is the minimal number of
// bytes representing v (spec §4.3: "unsized big integers omit leading zero
// bytes; zero ⇒ empty"), failing if that minimal encoding would still need
// more than width bytes. For signed values the minimal two's-complement
// encoding keeps at least one byte, so a signed zero encodes as 0x00.
func bigIntBytes(v *big.Int, width int, signed, sized bool) ([]byte, error) {
	if width == 32 && !signed {
		// Fast path grounded on github.com/holiman/uint256 (see SPEC_FULL.md
		// §11): avoids a big.Int allocation chain for the common 256-bit
		// unsigned case (U256LE/U256BE).
		if v.Sign() < 0 || v.BitLen() > 256 {
			return nil, stream.ErrValueOverflow
		}
		var u uint256.Int
		u.SetFromBig(v)
		b := u.Bytes32()
		out := b[:]
		if sized {
			return out, nil
		}
		return trimLeadingZeros(out), nil
	}

	if signed {
		return signedBigIntBytes(v, width, sized)
	}
	return unsignedBigIntBytes(v, width, sized)
}

func unsignedBigIntBytes(v *big.Int, width int, sized bool) ([]byte, error) {
	if v.Sign() < 0 {
		return nil, stream.ErrValueOverflow
	}
	if sized {
		if v.BitLen() > width*8 {
			return nil, stream.ErrValueOverflow
		}
		return v.FillBytes(make([]byte, width)), nil
	}
	b := v.Bytes() // big-endian, no leading zeros, nil for zero
	if len(b) > width {
		return nil, stream.ErrValueOverflow
	}
	return b, nil
}

func signedBigIntBytes(v *big.Int, width int, sized bool) ([]byte, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width*8-1))
	if v.Sign() >= 0 {
		if v.Cmp(limit) >= 0 {
			return nil, stream.ErrValueOverflow
		}
	} else {
		neg := new(big.Int).Neg(v)
		if neg.Cmp(limit) > 0 {
			return nil, stream.ErrValueOverflow
		}
	}
	full := twosComplement(v, width)
	if sized {
		return full, nil
	}
	return trimSignedLeading(full), nil
}

// twosComplement renders v as a fixed-width, width-byte, big-endian two's
// complement encoding.
func twosComplement(v *big.Int, width int) []byte {
	if v.Sign() >= 0 {
		return v.FillBytes(make([]byte, width))
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(width*8))
	twos := new(big.Int).Add(mod, v)
	return twos.FillBytes(make([]byte, width))
}

// trimLeadingZeros strips redundant leading 0x00 bytes from an unsigned
// big-endian encoding (zero becomes the empty slice).
func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// trimSignedLeading strips the minimal number of redundant leading bytes
// from a two's-complement encoding: a leading 0x00 is redundant if the next
// byte's high bit is clear, and a leading 0xFF is redundant if the next
// byte's high bit is set. At least one byte is always kept.
func trimSignedLeading(b []byte) []byte {
	i := 0
	for i < len(b)-1 {
		if b[i] == 0x00 && b[i+1]&0x80 == 0 {
			i++
			continue
		}
		if b[i] == 0xFF && b[i+1]&0x80 != 0 {
			i++
			continue
		}
		break
	}
	return b[i:]
}

// bigIntFromBytes interprets raw as a big-endian two's-complement (or plain
// magnitude) value.
func bigIntFromBytes(raw []byte, signed bool) *big.Int {
	if !signed {
		return new(big.Int).SetBytes(raw)
	}
	if len(raw) == 0 {
		return new(big.Int)
	}
	v := new(big.Int).SetBytes(raw)
	if raw[0]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(len(raw)*8))
		v.Sub(v, mod)
	}
	return v
}

// reverse returns a copy of b with its bytes in reverse order.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// BigInt returns a coder for an arbitrary-precision integer, per spec
// §4.3's "bigint(size_bytes, little_endian, signed, sized)". When sized is
// true the coder has a fixed Size of width bytes; otherwise the coder
// writes/reads the minimal encoding (in the given byte order) and has no
// fixed size (it is
// intended for use as the last element of an unbounded container, or
// wrapped in [Prefix]).
func BigInt(width int, endian Endian, signed, sized bool) Coder[*big.Int] {
	encode := func(w *stream.Writer, v *big.Int) error {
		b, err := bigIntBytes(v, width, signed, sized)
		if err != nil {
			return err
		}
		if endian == LittleEndian {
			b = reverse(b)
		}
		return w.Bytes(b)
	}
	decode := func(r *stream.Reader) (*big.Int, error) {
		n := width
		if !sized {
			n = r.Remaining()
			if n > width {
				return nil, stream.ErrValueOverflow
			}
		}
		b, err := r.Bytes(n, false)
		if err != nil {
			return nil, err
		}
		if endian == LittleEndian {
			b = reverse(b)
		}
		return bigIntFromBytes(b, signed), nil
	}
	var size func() (int, bool)
	if sized {
		size = fixedSize(width)
	} else {
		size = noSize
	}
	return Wrap(encode, decode, size)
}

// Int wraps [BigInt] to produce a machine-integer-typed coder. Restricted to
// widths of at most 6 bytes (48 bits), which keeps every value within the
// 53-bit range that a float64 also represents exactly (spec §4.3).
func Int(width int, endian Endian, signed, sized bool) Coder[int64] {
	if width > 6 {
		panic("packed: Int width must be at most 6 bytes; use BigInt for wider integers")
	}
	inner := BigInt(width, endian, signed, sized)
	return Wrap(
		func(w *stream.Writer, v int64) error {
			return inner.EncodeStream(w, big.NewInt(v))
		},
		func(r *stream.Reader) (int64, error) {
			v, err := inner.DecodeStream(r)
			if err != nil {
				return 0, err
			}
			return v.Int64(), nil
		},
		inner.Size,
	)
}
