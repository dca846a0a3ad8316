package varint

import (
	"bytes"
	"testing"

	"github.com/indexsupply/chainabi/tc"
)

func TestUvarint32RoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 127, 128, 300, 16384, 1<<32 - 1}
	for _, want := range cases {
		b := PutUvarint32(nil, want)
		got, n, err := Uvarint32(b)
		tc.NoErr(t, err)
		tc.WantGot(t, len(b), n)
		tc.WantGot(t, want, got)
	}
}

func Test300EncodesToAC02(t *testing.T) {
	got := PutUvarint32(nil, 300)
	want := []byte{0xac, 0x02}
	if !bytes.Equal(got, want) {
		t.Errorf("want % x got % x", want, got)
	}
}

func TestVarint32ZigZag(t *testing.T) {
	cases := []int32{0, -1, 1, -2, 2, -64, 63, 1<<31 - 1, -(1 << 31)}
	for _, want := range cases {
		b := PutVarint32(nil, want)
		got, n, err := Varint32(b)
		tc.NoErr(t, err)
		tc.WantGot(t, len(b), n)
		tc.WantGot(t, want, got)
	}
}

func TestUvarint32ReadPastEnd(t *testing.T) {
	_, _, err := Uvarint32([]byte{0x80})
	if err == nil {
		t.Fatal("expected error decoding truncated varint")
	}
}
