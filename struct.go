package packed

import (
	"errors"

	"pack.dev/packed/stream"
)

// Field is one named coder within a [Struct].
type Field struct {
	Name  string
	Coder Coder[any]
}

// F builds a [Field] from a typed coder, lifting it to Coder[any] via [Any].
func F[V any](name string, c Coder[V]) Field {
	return Field{Name: name, Coder: Any(c)}
}

var errMissingField = errors.New("packed: struct value missing field")

// Struct returns a coder over map[string]any with the given named fields,
// encoded and decoded in declaration order — which is part of the wire
// format, per spec §4.4 "struct(fields)". Its fixed size is the sum of its
// fields' sizes when every field has one.
func Struct(fields ...Field) Coder[map[string]any] {
	encode := func(w *stream.Writer, v map[string]any) error {
		w.Push("", &v)
		defer w.Pop()
		for _, f := range fields {
			val, ok := v[f.Name]
			if !ok {
				return stream.WrapPath(f.Name, errMissingField)
			}
			if err := f.Coder.EncodeStream(w, val); err != nil {
				return stream.WrapPath(f.Name, err)
			}
		}
		return nil
	}
	decode := func(r *stream.Reader) (map[string]any, error) {
		out := make(map[string]any, len(fields))
		r.Push("", &out)
		defer r.Pop()
		for _, f := range fields {
			val, err := f.Coder.DecodeStream(r)
			if err != nil {
				return nil, stream.WrapPath(f.Name, err)
			}
			out[f.Name] = val
		}
		return out, nil
	}
	return Wrap(encode, decode, fieldsSize(fields))
}

func fieldsSize(fields []Field) func() (int, bool) {
	return func() (int, bool) {
		sizes := make([]int, len(fields))
		for i, f := range fields {
			n, ok := f.Coder.Size()
			if !ok {
				sizes[i] = stream.NoSize
			} else {
				sizes[i] = n
			}
		}
		return stream.CombinedSize(sizes...)
	}
}
