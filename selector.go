package packed

import (
	"errors"
	"strings"

	"pack.dev/packed/stream"
)

type selectorKind int

const (
	selectorKindPath selectorKind = iota
	selectorKindCoder
)

// Selector names the boolean discriminator consulted by [Flagged] and
// [Optional], per spec §4.5 "flagged(selector, inner, default?)": either a
// path to a boolean sibling field already present elsewhere on the path
// stack, or a coder for a boolean written/read in-line.
type Selector struct {
	kind  selectorKind
	path  []string
	coder Coder[bool]
}

// SelectorPath builds a Selector that resolves against a previously
// decoded/encoded boolean field via a "/"-separated path expression.
func SelectorPath(path string) Selector {
	return Selector{kind: selectorKindPath, path: strings.Split(path, "/")}
}

// SelectorCoder builds a Selector that writes/reads its own boolean
// discriminator in-line, immediately before the conditional payload.
func SelectorCoder(c Coder[bool]) Selector {
	return Selector{kind: selectorKindCoder, coder: c}
}

var (
	errSelectorNotBool  = errors.New("packed: flagged selector path does not resolve to a boolean")
	errFlagMismatch     = errors.New("packed: flagged value presence does not match selector path")
)

func (s Selector) encode(w *stream.Writer, present bool) error {
	switch s.kind {
	case selectorKindCoder:
		return s.coder.EncodeStream(w, present)
	default:
		resolved, err := w.ResolveAny(s.path)
		if err != nil {
			return err
		}
		b, ok := resolved.(bool)
		if !ok {
			return errSelectorNotBool
		}
		if b != present {
			return errFlagMismatch
		}
		return nil
	}
}

func (s Selector) decode(r *stream.Reader) (bool, error) {
	switch s.kind {
	case selectorKindCoder:
		return s.coder.DecodeStream(r)
	default:
		resolved, err := r.ResolveAny(s.path)
		if err != nil {
			return false, err
		}
		b, ok := resolved.(bool)
		if !ok {
			return false, errSelectorNotBool
		}
		return b, nil
	}
}
