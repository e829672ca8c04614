package packed

import (
	"bytes"
	"testing"
)

func TestPointerChainConcreteScenario(t *testing.T) {
	c := Pointer(U8, Pointer(U8, Pointer(U8, U8, true), true), true)
	got, err := Encode[int64](c, 123)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x01, 0x01, 0x01, 0x7B}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X, want % X", got, want)
	}
	back, err := Decode[int64](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back != 123 {
		t.Errorf("round trip = %d, want 123", back)
	}
}

func TestArrayOfPointersConcreteScenario(t *testing.T) {
	elem := Pointer(U16BE, U8, true)
	c := Array(LengthOf(U8), elem)
	got, err := Encode[[]int64](c, []int64{3, 4})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x02, 0x00, 0x05, 0x00, 0x06, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X, want % X (grouped layout)", got, want)
	}
	back, err := Decode[[]int64](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(back) != 2 || back[0] != 3 || back[1] != 4 {
		t.Errorf("round trip = %v, want [3 4]", back)
	}
}

func TestPointerRereadFailsWithoutAllowMultipleReads(t *testing.T) {
	elem := Pointer(U8, U8, true)
	c := Array(FixedLength(2), elem)
	data, err := Encode[[]int64](c, []int64{1, 1})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// Force both pointers to the same offset: overwrite the second
	// placeholder to equal the first.
	data[1] = data[0]
	if _, err := Decode[[]int64](c, data); err == nil {
		t.Fatal("expected overlapping pointer reads to fail")
	}
}
