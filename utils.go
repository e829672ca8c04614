package packed

import "bytes"

// EqualBytes reports whether a and b hold identical contents. Exposed per
// spec §6's "utils" surface for external collaborators (the debugger, the
// benchmark harness, format definitions) that need byte comparison without
// importing the stdlib bytes package themselves.
func EqualBytes(a, b []byte) bool { return bytes.Equal(a, b) }

// ConcatBytes concatenates every slice in parts into a single new slice.
func ConcatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// IsBytes reports whether v is a []byte (as opposed to some other any
// value), for callers handling heterogeneous payloads ([Tag], [Struct]
// fields typed as `any`). No coder in this package calls it.
func IsBytes(v any) bool {
	_, ok := v.([]byte)
	return ok
}
