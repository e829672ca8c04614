package coders

import (
	"errors"
	"math/big"
	"strings"

	"pack.dev/packed"
)

var errInvalidDecimal = errors.New("packed/coders: malformed decimal string")
var errDecimalPrecision = errors.New("packed/coders: too many fractional digits for this scale")

// Decimal returns a bijection between a fixed-point decimal string (e.g.
// "6.30880845") and a *big.Int scaled by 10^scale (e.g. 630880845 for
// scale=8), for composing through
// packed.Apply(packed.BigInt(...), coders.Decimal(scale)), per spec.md §8's
// "coders.decimal(8)" scenario.
func Decimal(scale int) packed.Bijection[string, *big.Int] {
	return packed.Bijection[string, *big.Int]{
		To: func(s string) (*big.Int, error) {
			neg := strings.HasPrefix(s, "-")
			if neg {
				s = s[1:]
			}
			intPart, fracPart, _ := strings.Cut(s, ".")
			if len(fracPart) > scale {
				return nil, errDecimalPrecision
			}
			fracPart += strings.Repeat("0", scale-len(fracPart))
			v, ok := new(big.Int).SetString(intPart+fracPart, 10)
			if !ok {
				return nil, errInvalidDecimal
			}
			if neg {
				v.Neg(v)
			}
			return v, nil
		},
		From: func(v *big.Int) (string, error) {
			neg := v.Sign() < 0
			digits := new(big.Int).Abs(v).String()
			for len(digits) <= scale {
				digits = "0" + digits
			}
			intPart := digits[:len(digits)-scale]
			fracPart := strings.TrimRight(digits[len(digits)-scale:], "0")
			out := intPart
			if fracPart != "" {
				out += "." + fracPart
			}
			if neg {
				out = "-" + out
			}
			return out, nil
		},
	}
}
