package packed

import (
	"errors"

	"pack.dev/packed/stream"
)

// ErrInvalidBool indicates a boolean field decoded a byte other than 0x00 or
// 0x01 (spec §4.3 "Boolean", §6 "bool is exactly 0x00 or 0x01").
var ErrInvalidBool = errors.New("packed: boolean field is neither 0x00 nor 0x01")

// Bool is a one-byte boolean coder: encodes true as 0x01 and false as 0x00;
// decode of any other byte value fails.
var Bool Coder[bool] = boolCoder{}

type boolCoder struct{}

func (boolCoder) EncodeStream(w *stream.Writer, v bool) error {
	if v {
		return w.Byte(1)
	}
	return w.Byte(0)
}

func (boolCoder) DecodeStream(r *stream.Reader) (bool, error) {
	b, err := r.Byte(false)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

func (boolCoder) Size() (int, bool) { return 1, true }
