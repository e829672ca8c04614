package vlq

import (
	"bytes"
	"io"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 123123123, ^uint64(0) >> 1}
	for _, v := range values {
		var buf bytes.Buffer
		n, err := Write(&buf, v)
		if err != nil {
			t.Fatalf("Write(%d) error = %v", v, err)
		}
		if n != Length(v) {
			t.Errorf("Write(%d) wrote %d bytes, Length() says %d", v, n, Length(v))
		}
		got, err := Read[uint64](&buf)
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
		if got != v {
			t.Errorf("round trip = %d, want %d", got, v)
		}
	}
}

func TestReadIgnoresLeadingZeroBytes(t *testing.T) {
	// 0x80 0x01 is a non-minimal encoding of 1 (a redundant continuation byte
	// carrying zero payload bits up front).
	buf := bytes.NewReader([]byte{0x80, 0x01})
	got, err := Read[uint64](buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Read() = %d, want 1", got)
	}
}

func TestReadTruncatedInputFails(t *testing.T) {
	buf := bytes.NewReader([]byte{0x80})
	if _, err := Read[uint64](buf); err != io.ErrUnexpectedEOF {
		t.Errorf("Read() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestReadOverflowsSmallType(t *testing.T) {
	// A value requiring more than 8 bits cannot fit in a uint8 destination.
	buf := bytes.NewReader([]byte{0x82, 0x00})
	if _, err := Read[uint8](buf); err != errOverflow {
		t.Errorf("Read() error = %v, want errOverflow", err)
	}
}

func TestLengthMatchesEncodedSize(t *testing.T) {
	tests := map[string]struct {
		n    uint64
		want int
	}{
		"zero":        {0, 1},
		"one-byte max": {127, 1},
		"two-byte min": {128, 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Length(tc.n); got != tc.want {
				t.Errorf("Length(%d) = %d, want %d", tc.n, got, tc.want)
			}
		})
	}
}
