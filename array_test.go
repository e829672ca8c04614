package packed

import (
	"bytes"
	"testing"
)

func TestTerminatedArrayConcreteScenario(t *testing.T) {
	c := Array(TerminatedBy([]byte{0x00, 0x00}), U16LE)
	got, err := Encode[[]int64](c, []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = % X, want % X", got, want)
	}

	back, err := Decode[[]int64](c, got)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(back) != 3 || back[0] != 1 || back[1] != 2 || back[2] != 3 {
		t.Errorf("round trip = %v, want [1 2 3]", back)
	}
}

func TestTerminatedArrayElementCollidingWithTerminatorFails(t *testing.T) {
	c := Array(TerminatedBy([]byte{0x00, 0x00}), U16LE)
	if _, err := Encode[[]int64](c, []int64{0, 1, 2}); err == nil {
		t.Fatal("expected an element encoding to 0x0000 to collide with the terminator")
	}
}

func TestUnboundedArrayConsumesToEnd(t *testing.T) {
	c := Array(Unbounded(), U8)
	data := []byte{0x01, 0x02, 0x03}
	back, err := Decode[[]int64](c, data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(back) != 3 || back[0] != 1 || back[1] != 2 || back[2] != 3 {
		t.Errorf("round trip = %v, want [1 2 3]", back)
	}
}
