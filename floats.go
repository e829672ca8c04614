package packed

import (
	"encoding/binary"
	"math"

	"pack.dev/packed/stream"
)

// F32LE, F32BE, F64LE, F64BE encode IEEE-754 binary32/binary64 values in the
// named byte order (spec §4.3 "Floats"). Decode accepts any bit pattern,
// including ±Inf and NaN; Go's float32/float64 have no non-numeric
// representation to reject on encode.
var (
	F32LE = float32Coder(LittleEndian)
	F32BE = float32Coder(BigEndian)
	F64LE = float64Coder(LittleEndian)
	F64BE = float64Coder(BigEndian)
)

func float32Coder(endian Endian) Coder[float32] {
	encode := func(w *stream.Writer, v float32) error {
		var b [4]byte
		bits := math.Float32bits(v)
		if endian == LittleEndian {
			binary.LittleEndian.PutUint32(b[:], bits)
		} else {
			binary.BigEndian.PutUint32(b[:], bits)
		}
		return w.Bytes(b[:])
	}
	decode := func(r *stream.Reader) (float32, error) {
		b, err := r.Bytes(4, false)
		if err != nil {
			return 0, err
		}
		var bits uint32
		if endian == LittleEndian {
			bits = binary.LittleEndian.Uint32(b)
		} else {
			bits = binary.BigEndian.Uint32(b)
		}
		return math.Float32frombits(bits), nil
	}
	return Wrap(encode, decode, fixedSize(4))
}

func float64Coder(endian Endian) Coder[float64] {
	encode := func(w *stream.Writer, v float64) error {
		var b [8]byte
		bits := math.Float64bits(v)
		if endian == LittleEndian {
			binary.LittleEndian.PutUint64(b[:], bits)
		} else {
			binary.BigEndian.PutUint64(b[:], bits)
		}
		return w.Bytes(b[:])
	}
	decode := func(r *stream.Reader) (float64, error) {
		b, err := r.Bytes(8, false)
		if err != nil {
			return 0, err
		}
		var bits uint64
		if endian == LittleEndian {
			bits = binary.LittleEndian.Uint64(b)
		} else {
			bits = binary.BigEndian.Uint64(b)
		}
		return math.Float64frombits(bits), nil
	}
	return Wrap(encode, decode, fixedSize(8))
}
