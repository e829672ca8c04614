package packed

import (
	"bytes"
	"testing"
)

func cstringCoder() Coder[string] {
	return String(TerminatedBy([]byte{0x00}))
}

func TestPadRightConcreteScenarios(t *testing.T) {
	c := PadRight(3, cstringCoder(), nil)
	tests := map[string]struct {
		val  string
		want []byte
	}{
		"a":    {"a", []byte{0x61, 0x00, 0x00}},
		"aaaa": {"aaaa", []byte{0x61, 0x61, 0x61, 0x61, 0x00, 0x00}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Encode[string](c, tc.val)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Encode(%q) = % X, want % X", tc.val, got, tc.want)
			}
			back, err := Decode[string](c, got)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if back != tc.val {
				t.Errorf("round trip = %q, want %q", back, tc.val)
			}
		})
	}
}

func TestCStringDecodeFailsOnTrailingBytes(t *testing.T) {
	c := cstringCoder()
	data := []byte{0x74, 0x65, 0x00, 0x73, 0x74}
	if _, err := Decode[string](c, data); err == nil {
		t.Fatal("expected decode to fail on unconsumed trailing bytes")
	}
}
