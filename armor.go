package packed

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"

	"pack.dev/packed/stream"
)

var (
	errArmorHeaderMissing = errors.New("packed: armor header not found")
	errArmorFooterMissing = errors.New("packed: armor footer not found")
	errArmorChecksum      = errors.New("packed: armor checksum mismatch")
)

// Checksum computes a checksum over the un-armored payload bytes, rendered
// as base64 on the trailing "=..." line of the armor, per spec §4.8
// "base64armor(name, lineLen, inner, checksum?)".
type Checksum func(payload []byte) []byte

// Base64Armor wraps inner in a PGP-style ASCII-armor text container:
//
//	-----BEGIN <NAME>-----
//	<blank line>
//	<base64 of inner's bytes, wrapped at lineLen chars per line>
//	[=<base64 of checksum(inner bytes)>]
//	-----END <NAME>-----
//
// Decode strips the header/footer, unwraps the base64 body, optionally
// verifies the checksum line, and delegates to inner.
func Base64Armor[V any](name string, lineLen int, inner Coder[V], checksum Checksum) Coder[V] {
	header := "-----BEGIN " + name + "-----"
	footer := "-----END " + name + "-----"

	encode := func(w *stream.Writer, v V) error {
		payload, err := Encode(inner, v)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		buf.WriteString(header)
		buf.WriteString("\n\n")
		encoded := base64.StdEncoding.EncodeToString(payload)
		for i := 0; i < len(encoded); i += lineLen {
			j := i + lineLen
			if j > len(encoded) {
				j = len(encoded)
			}
			buf.WriteString(encoded[i:j])
			buf.WriteByte('\n')
		}
		if checksum != nil {
			buf.WriteByte('=')
			buf.WriteString(base64.StdEncoding.EncodeToString(checksum(payload)))
			buf.WriteByte('\n')
		}
		buf.WriteString(footer)
		return w.Bytes(buf.Bytes())
	}

	decode := func(r *stream.Reader) (V, error) {
		var zero V
		raw, err := r.Bytes(r.Remaining(), false)
		if err != nil {
			return zero, err
		}
		text := string(raw)
		bi := strings.Index(text, header)
		if bi < 0 {
			return zero, errArmorHeaderMissing
		}
		ei := strings.Index(text, footer)
		if ei < 0 {
			return zero, errArmorFooterMissing
		}
		body := text[bi+len(header) : ei]

		var b64 strings.Builder
		var sumLine string
		for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
			line = strings.TrimSpace(line)
			switch {
			case line == "":
				continue
			case strings.HasPrefix(line, "="):
				sumLine = strings.TrimPrefix(line, "=")
			default:
				b64.WriteString(line)
			}
		}
		payload, err := base64.StdEncoding.DecodeString(b64.String())
		if err != nil {
			return zero, err
		}
		if checksum != nil {
			if sumLine == "" {
				return zero, errArmorChecksum
			}
			want, err := base64.StdEncoding.DecodeString(sumLine)
			if err != nil {
				return zero, err
			}
			if !bytes.Equal(want, checksum(payload)) {
				return zero, errArmorChecksum
			}
		}
		return Decode(inner, payload)
	}

	return Wrap(encode, decode, nil)
}
