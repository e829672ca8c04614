package coders

import (
	"errors"
	"math/big"

	"pack.dev/packed"
)

var errIntOutOfRange = errors.New("packed/coders: value out of the safe int range")

// SafeInt returns a bijection between int64 and *big.Int that rejects
// values outside [min, max], for composing through
// packed.Apply(packed.BigInt(...), coders.SafeInt(min, max)) when a bigint
// field's domain is known to fit (and must be kept within) a narrower
// machine-integer range, per spec.md §2 item 6 "safe bigint↔int".
func SafeInt(min, max int64) packed.Bijection[int64, *big.Int] {
	return packed.Bijection[int64, *big.Int]{
		To: func(v int64) (*big.Int, error) {
			if v < min || v > max {
				return nil, errIntOutOfRange
			}
			return big.NewInt(v), nil
		},
		From: func(b *big.Int) (int64, error) {
			if !b.IsInt64() {
				return 0, errIntOutOfRange
			}
			v := b.Int64()
			if v < min || v > max {
				return 0, errIntOutOfRange
			}
			return v, nil
		},
	}
}
