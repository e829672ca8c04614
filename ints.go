package packed

import (
	"encoding/binary"
	"math/big"

	"pack.dev/packed/stream"
)

// U8/I8/U16.../I256BE are the named integer aliases of spec §4.3. Widths up
// to 4 bytes (32 bits) stay within [Int]'s 6-byte machine-integer
// restriction and are returned as int64; wider widths (64, 128, 256 bits)
// exceed it and are returned as *big.Int via [BigInt], except for the
// 64-bit pair which is returned as uint64/int64 directly (see
// [machineUint64]/[machineInt64]) since Go's 64-bit integers hold such a
// value exactly, unlike the Int coder's restriction (which stems from the
// original JS implementation's float64 safe-integer ceiling).
var (
	U8 = Int(1, BigEndian, false, true)
	I8 = Int(1, BigEndian, true, true)

	U16LE = Int(2, LittleEndian, false, true)
	U16BE = Int(2, BigEndian, false, true)
	I16LE = Int(2, LittleEndian, true, true)
	I16BE = Int(2, BigEndian, true, true)

	U32LE = Int(4, LittleEndian, false, true)
	U32BE = Int(4, BigEndian, false, true)
	I32LE = Int(4, LittleEndian, true, true)
	I32BE = Int(4, BigEndian, true, true)

	U64LE = machineUint64(LittleEndian)
	U64BE = machineUint64(BigEndian)
	I64LE = machineInt64(LittleEndian)
	I64BE = machineInt64(BigEndian)

	U128LE = BigInt(16, LittleEndian, false, true)
	U128BE = BigInt(16, BigEndian, false, true)
	I128LE = BigInt(16, LittleEndian, true, true)
	I128BE = BigInt(16, BigEndian, true, true)

	U256LE = BigInt(32, LittleEndian, false, true)
	U256BE = BigInt(32, BigEndian, false, true)
	I256LE = BigInt(32, LittleEndian, true, true)
	I256BE = BigInt(32, BigEndian, true, true)
)

// machineUint64 returns a fixed 8-byte coder for uint64, grounded on the
// teacher's own use of encoding/binary for fixed-width integer fields
// (ber/types.go).
func machineUint64(endian Endian) Coder[uint64] {
	encode := func(w *stream.Writer, v uint64) error {
		var b [8]byte
		if endian == LittleEndian {
			binary.LittleEndian.PutUint64(b[:], v)
		} else {
			binary.BigEndian.PutUint64(b[:], v)
		}
		return w.Bytes(b[:])
	}
	decode := func(r *stream.Reader) (uint64, error) {
		b, err := r.Bytes(8, false)
		if err != nil {
			return 0, err
		}
		if endian == LittleEndian {
			return binary.LittleEndian.Uint64(b), nil
		}
		return binary.BigEndian.Uint64(b), nil
	}
	return Wrap(encode, decode, fixedSize(8))
}

// machineInt64 is the signed counterpart of [machineUint64], using two's
// complement via the bit pattern of the unsigned read/write.
func machineInt64(endian Endian) Coder[int64] {
	inner := machineUint64(endian)
	return Wrap(
		func(w *stream.Writer, v int64) error {
			return inner.EncodeStream(w, uint64(v))
		},
		func(r *stream.Reader) (int64, error) {
			u, err := inner.DecodeStream(r)
			if err != nil {
				return 0, err
			}
			return int64(u), nil
		},
		fixedSize(8),
	)
}

// BigIntValue is a convenience alias naming the type [BigInt] coders decode
// to, used by the named 128/256-bit aliases above.
type BigIntValue = *big.Int

var _ Coder[BigIntValue] = U256BE
