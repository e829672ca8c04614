package packed

import (
	"errors"

	"pack.dev/packed/stream"
)

var (
	errUnknownMapName    = errors.New("packed: no variant registered for this name")
	errUnknownMapValue   = errors.New("packed: decoded wire value has no matching name")
	errUnknownTagVariant = errors.New("packed: no coder registered for this tag")
	errInvalidTagValue   = errors.New("packed: tagged value missing tag/data shape")
)

// Map returns a coder over string names bijected to a finite set of wire
// values via variants, per spec §4.4 "map(inner, variants)". Encode looks
// up the name to obtain the wire value written via inner; decode inverts
// variants and fails if the decoded wire value is not a key.
func Map[W comparable](inner Coder[W], variants map[string]W) Coder[string] {
	inverse := make(map[W]string, len(variants))
	for name, w := range variants {
		inverse[w] = name
	}
	encode := func(w *stream.Writer, name string) error {
		val, ok := variants[name]
		if !ok {
			return errUnknownMapName
		}
		return inner.EncodeStream(w, val)
	}
	decode := func(r *stream.Reader) (string, error) {
		val, err := inner.DecodeStream(r)
		if err != nil {
			return "", err
		}
		name, ok := inverse[val]
		if !ok {
			return "", errUnknownMapValue
		}
		return name, nil
	}
	return Wrap(encode, decode, inner.Size)
}

// Tag returns a tagged-union coder over map[string]any{"tag": T, "data": any}
// per spec §4.4 "tag(tagCoder, variants)". Encode writes the discriminator
// via tagCoder, then the payload via variants[discriminator]; decode reads
// the discriminator and dispatches to the matching variant coder. An
// unknown discriminator fails on either side.
func Tag[T comparable](tagCoder Coder[T], variants map[T]Coder[any]) Coder[map[string]any] {
	encode := func(w *stream.Writer, v map[string]any) error {
		tag, ok := v["tag"].(T)
		if !ok {
			return errInvalidTagValue
		}
		if err := tagCoder.EncodeStream(w, tag); err != nil {
			return stream.WrapPath("tag", err)
		}
		c, ok := variants[tag]
		if !ok {
			return errUnknownTagVariant
		}
		return stream.WrapPath("data", c.EncodeStream(w, v["data"]))
	}
	decode := func(r *stream.Reader) (map[string]any, error) {
		tag, err := tagCoder.DecodeStream(r)
		if err != nil {
			return nil, stream.WrapPath("tag", err)
		}
		c, ok := variants[tag]
		if !ok {
			return nil, errUnknownTagVariant
		}
		data, err := c.DecodeStream(r)
		if err != nil {
			return nil, stream.WrapPath("data", err)
		}
		return map[string]any{"tag": tag, "data": data}, nil
	}
	return Wrap(encode, decode, nil)
}

// NamedVariant pairs a tag value with its payload coder, for use with
// [MappedTag].
type NamedVariant[T comparable] struct {
	Tag   T
	Coder Coder[any]
}

// MappedTag returns a coder combining [Map] (a name↔discriminator bijection)
// with [Tag] (a per-variant payload coder), per spec §4.4
// "mappedTag(tagCoder, namedVariants)". The outer value is
// map[string]any{"tag": <name>, "data": any}.
func MappedTag[T comparable](tagCoder Coder[T], namedVariants map[string]NamedVariant[T]) Coder[map[string]any] {
	tagToName := make(map[T]string, len(namedVariants))
	variants := make(map[T]Coder[any], len(namedVariants))
	for name, nv := range namedVariants {
		tagToName[nv.Tag] = name
		variants[nv.Tag] = nv.Coder
	}
	inner := Tag(tagCoder, variants)
	encode := func(w *stream.Writer, v map[string]any) error {
		name, ok := v["tag"].(string)
		if !ok {
			return errInvalidTagValue
		}
		nv, ok := namedVariants[name]
		if !ok {
			return errUnknownTagVariant
		}
		return inner.EncodeStream(w, map[string]any{"tag": nv.Tag, "data": v["data"]})
	}
	decode := func(r *stream.Reader) (map[string]any, error) {
		raw, err := inner.DecodeStream(r)
		if err != nil {
			return nil, err
		}
		tag, ok := raw["tag"].(T)
		if !ok {
			return nil, errInvalidTagValue
		}
		name, ok := tagToName[tag]
		if !ok {
			return nil, errUnknownTagVariant
		}
		return map[string]any{"tag": name, "data": raw["data"]}, nil
	}
	return Wrap(encode, decode, nil)
}
