package packed

import (
	"bytes"
	"testing"
)

func TestIntConcreteScenarios(t *testing.T) {
	tests := map[string]struct {
		coder Coder[int64]
		val   int64
		want  []byte
	}{
		"U32BE": {U32BE, 123123123, []byte{0x07, 0x56, 0xB5, 0xB3}},
		"U32LE": {U32LE, 123123123, []byte{0xB3, 0xB5, 0x56, 0x07}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Encode(tc.coder, tc.val)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Encode(%d) = % X, want % X", tc.val, got, tc.want)
			}
			back, err := Decode(tc.coder, got)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if back != tc.val {
				t.Errorf("round trip = %d, want %d", back, tc.val)
			}
		})
	}
}

func TestU64LEMaxValue(t *testing.T) {
	got, err := Encode[uint64](U64LE, ^uint64(0))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(2^64-1) = % X, want % X", got, want)
	}
}

func TestIntWidthPanicsAboveSix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Int(7, ...) did not panic")
		}
	}()
	Int(7, BigEndian, false, true)
}
