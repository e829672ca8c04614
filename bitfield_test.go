package packed

import (
	"bytes"
	"testing"

	"pack.dev/packed/stream"
)

func TestBitPackingConcreteScenario(t *testing.T) {
	c := Struct(
		F("f", BitField(5)),
		F("f1", BitField(1)),
		F("f2", BitField(1)),
		F("f3", BitField(1)),
	)
	val := map[string]any{
		"f": uint32(1), "f1": uint32(0), "f2": uint32(1), "f3": uint32(0),
	}
	got, err := Encode[map[string]any](c, val)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x0A}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X, want % X", got, want)
	}

	back, err := Decode[map[string]any](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	for k, v := range val {
		if back[k] != v {
			t.Errorf("field %s = %v, want %v", k, back[k], v)
		}
	}
}

func TestBitFieldMisalignedByteOpFails(t *testing.T) {
	w := stream.NewWriter()
	if err := w.Bits(1, 3); err != nil {
		t.Fatalf("Bits() error = %v", err)
	}
	if err := w.Byte(0); err == nil {
		t.Fatal("expected byte-level write on a misaligned bit buffer to fail")
	}
}
