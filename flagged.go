package packed

import "pack.dev/packed/stream"

// Flagged returns a coder over *V (nil meaning absent) whose presence is
// governed by selector, per spec §4.5 "flagged(selector, inner, default?)".
// Encode: if v is non-nil, inner encodes *v; otherwise, if def is non-nil,
// inner encodes *def (open question §9.3: this re-encodes the default value
// rather than emitting nothing, so the wire bytes always exist when def is
// set); otherwise nothing is emitted. Decode is symmetric.
func Flagged[V any](selector Selector, inner Coder[V], def *V) Coder[*V] {
	encode := func(w *stream.Writer, v *V) error {
		present := v != nil
		if err := selector.encode(w, present); err != nil {
			return err
		}
		if present {
			return inner.EncodeStream(w, *v)
		}
		if def != nil {
			return inner.EncodeStream(w, *def)
		}
		return nil
	}
	decode := func(r *stream.Reader) (*V, error) {
		present, err := selector.decode(r)
		if err != nil {
			return nil, err
		}
		if present {
			v, err := inner.DecodeStream(r)
			if err != nil {
				return nil, err
			}
			return &v, nil
		}
		if def != nil {
			if _, err := inner.DecodeStream(r); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	return Wrap(encode, decode, nil)
}

// Optional is [Flagged] with an in-line boolean discriminator, per spec
// §4.5 "optional(flagCoder, inner, default?)".
func Optional[V any](flagCoder Coder[bool], inner Coder[V], def *V) Coder[*V] {
	return Flagged(SelectorCoder(flagCoder), inner, def)
}
