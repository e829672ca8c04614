package packed

import (
	"bytes"
	"testing"
)

func TestStructConcreteScenario(t *testing.T) {
	c := Struct(
		F("a", U8),
		F("b", U16LE),
		F("c", String(LengthOf(U8))),
	)
	val := map[string]any{"a": int64(31), "b": int64(12345), "c": "hello"}
	got, err := Encode[map[string]any](c, val)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x1F, 0x39, 0x30, 0x05, 0x68, 0x65, 0x6C, 0x6C, 0x6F}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X, want % X", got, want)
	}

	back, err := Decode[map[string]any](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back["a"] != int64(31) || back["b"] != int64(12345) || back["c"] != "hello" {
		t.Errorf("round trip = %#v, want %#v", back, val)
	}
}

func TestStructMissingFieldFails(t *testing.T) {
	c := Struct(F("a", U8))
	if _, err := Encode[map[string]any](c, map[string]any{}); err == nil {
		t.Fatal("expected error for missing field, got nil")
	}
}

func TestStructFixedSize(t *testing.T) {
	c := Struct(F("a", U8), F("b", U16LE))
	n, ok := c.Size()
	if !ok || n != 3 {
		t.Errorf("Size() = (%d, %v), want (3, true)", n, ok)
	}
}
