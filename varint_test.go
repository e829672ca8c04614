package packed

import (
	"bytes"
	"testing"
)

func TestInt64VLQRoundTrip(t *testing.T) {
	tests := []int64{0, 1, 127, 128, 300, 123123123}
	for _, v := range tests {
		got, err := Encode[int64](Int64VLQ, v)
		if err != nil {
			t.Fatalf("Encode(%d) error = %v", v, err)
		}
		back, err := Decode[int64](Int64VLQ, got)
		if err != nil {
			t.Fatalf("Decode(%d) error = %v", v, err)
		}
		if back != v {
			t.Errorf("round trip = %d, want %d", back, v)
		}
	}
}

func TestInt64VLQAsLengthPrefix(t *testing.T) {
	c := Bytes(LengthOf(Int64VLQ), false)
	got, err := Encode[[]byte](c, bytes.Repeat([]byte{0xAB}, 200))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	// 200 encodes as a two-byte VLQ (0x81 0x48), then 200 payload bytes.
	if len(got) != 202 {
		t.Fatalf("len(got) = %d, want 202", len(got))
	}
	back, err := Decode[[]byte](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(back) != 200 {
		t.Errorf("len(back) = %d, want 200", len(back))
	}
}
