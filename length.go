package packed

import (
	"strings"

	"pack.dev/packed/stream"
)

// lengthKind distinguishes the five length-specifier variants of spec §3
// "Length specifier".
type lengthKind int

const (
	lengthKindCoder lengthKind = iota
	lengthKindConstant
	lengthKindTerminator
	lengthKindPath
	lengthKindUnbounded
)

// LengthSpec describes how the length of a variable-length payload (bytes,
// string, array, prefix) is determined, per spec §3. Construct one with
// [LengthOf], [FixedLength], [TerminatedBy], [PathLength], or [Unbounded].
type LengthSpec struct {
	kind       lengthKind
	coder      Coder[int64]
	constant   int
	terminator []byte
	segments   []string
}

// LengthOf makes a length specifier that writes/reads an unsigned integer
// in-line immediately before the payload, via c.
func LengthOf(c Coder[int64]) LengthSpec {
	return LengthSpec{kind: lengthKindCoder, coder: c}
}

// FixedLength makes a length specifier with a compile-time-known constant
// length. Encode fails if the actual payload size differs from n.
func FixedLength(n int) LengthSpec {
	return LengthSpec{kind: lengthKindConstant, constant: n}
}

// TerminatedBy makes a length specifier bounded by a sentinel byte pattern:
// the payload ends when pattern is matched, and the pattern itself is
// consumed (decode) or appended (encode). pattern must not be empty.
func TerminatedBy(pattern []byte) LengthSpec {
	return LengthSpec{kind: lengthKindTerminator, terminator: append([]byte(nil), pattern...)}
}

// PathLength makes a length specifier that resolves against a previously
// decoded/encoded integer field via a "/"-separated path expression
// (".." pops a level), per spec §3 "Path stack".
func PathLength(path string) LengthSpec {
	return LengthSpec{kind: lengthKindPath, segments: strings.Split(path, "/")}
}

// Unbounded makes a length specifier consuming to the end of the current
// buffer view. Legal only as the last element of its enclosing container.
func Unbounded() LengthSpec {
	return LengthSpec{kind: lengthKindUnbounded}
}

func (l LengthSpec) isUnbounded() bool   { return l.kind == lengthKindUnbounded }
func (l LengthSpec) isTerminator() bool  { return l.kind == lengthKindTerminator }
func (l LengthSpec) terminatorBytes() []byte {
	return l.terminator
}

// decodeLength resolves the length of a not-yet-read payload. It must not be
// called with a terminator or unbounded spec; those are handled by their own
// scan/slurp logic in the combinators that use them.
func (l LengthSpec) decodeLength(r *stream.Reader) (int, error) {
	switch l.kind {
	case lengthKindCoder:
		v, err := l.coder.DecodeStream(r)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, stream.ErrNegativeLength
		}
		return int(v), nil
	case lengthKindConstant:
		return l.constant, nil
	case lengthKindPath:
		return r.Resolve(l.segments)
	default:
		panic("packed: decodeLength called on a terminator/unbounded spec")
	}
}

// encodeLength validates and/or emits the length of a payload whose encoded
// size is actual. Terminator and unbounded specs write nothing here; their
// framing bytes are produced by the caller directly.
func (l LengthSpec) encodeLength(w *stream.Writer, actual int) error {
	switch l.kind {
	case lengthKindCoder:
		return l.coder.EncodeStream(w, int64(actual))
	case lengthKindConstant:
		if actual != l.constant {
			return stream.ErrLengthMismatch
		}
		return nil
	case lengthKindPath:
		resolved, err := w.Resolve(l.segments)
		if err != nil {
			return err
		}
		if resolved != actual {
			return stream.ErrLengthMismatch
		}
		return nil
	default:
		return nil
	}
}
