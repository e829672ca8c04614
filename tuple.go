package packed

import (
	"strconv"

	"pack.dev/packed/stream"
)

// Tuple returns a coder over []any with the given positional coders,
// encoded and decoded in order, per spec §4.4 "tuple(fields)" ("Same as
// struct but positional"). Its fixed size is the sum of its elements'
// sizes when every element has one.
func Tuple(coders ...Coder[any]) Coder[[]any] {
	encode := func(w *stream.Writer, v []any) error {
		if len(v) != len(coders) {
			return stream.ErrLengthMismatch
		}
		w.Push("", &v)
		defer w.Pop()
		for i, c := range coders {
			if err := c.EncodeStream(w, v[i]); err != nil {
				return stream.WrapPath(strconv.Itoa(i), err)
			}
		}
		return nil
	}
	decode := func(r *stream.Reader) ([]any, error) {
		out := make([]any, len(coders))
		r.Push("", &out)
		defer r.Pop()
		for i, c := range coders {
			val, err := c.DecodeStream(r)
			if err != nil {
				return nil, stream.WrapPath(strconv.Itoa(i), err)
			}
			out[i] = val
		}
		return out, nil
	}
	return Wrap(encode, decode, tupleSize(coders))
}

func tupleSize(coders []Coder[any]) func() (int, bool) {
	return func() (int, bool) {
		sizes := make([]int, len(coders))
		for i, c := range coders {
			n, ok := c.Size()
			if !ok {
				sizes[i] = stream.NoSize
			} else {
				sizes[i] = n
			}
		}
		return stream.CombinedSize(sizes...)
	}
}
