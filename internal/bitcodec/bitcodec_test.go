package bitcodec

import (
	"bytes"
	"testing"
)

func TestBytesToBitsRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0xA5, 0x3C, 0x01},
		[]byte("hello"),
	}
	for _, c := range cases {
		bits := BytesToBits(c)
		if len(bits) != len(c)*8 {
			t.Fatalf("BytesToBits(%v): got %d bits, want %d", c, len(bits), len(c)*8)
		}
		back := BitsToBytes(bits)
		if !bytes.Equal(back, c) {
			t.Errorf("round trip mismatch: got %v, want %v", back, c)
		}
	}
}

func TestBytesToBitsMSBFirst(t *testing.T) {
	bits := BytesToBits([]byte{0b10110000})
	want := []byte{1, 0, 1, 1, 0, 0, 0, 0}
	if !bytes.Equal(bits, want) {
		t.Errorf("got %v, want %v", bits, want)
	}
}

func TestBitsToBytesPadding(t *testing.T) {
	bits := []byte{1, 1, 1}
	got := BitsToBytes(bits)
	want := []byte{0b11100000}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUintBitsRoundTrip(t *testing.T) {
	cases := []struct {
		v uint64
		n int
	}{
		{0, 8}, {255, 8}, {1, 1}, {0, 32}, {1<<32 - 1, 32}, {12345, 32},
	}
	for _, c := range cases {
		bits := UintToBits(c.v, c.n)
		if len(bits) != c.n {
			t.Fatalf("UintToBits(%d,%d): got %d bits", c.v, c.n, len(bits))
		}
		got := BitsToUint(bits)
		if got != c.v {
			t.Errorf("BitsToUint(UintToBits(%d,%d)) = %d, want %d", c.v, c.n, got, c.v)
		}
	}
}

func TestUintToBits32HeaderOrder(t *testing.T) {
	bits := UintToBits(1, 32)
	for i := 0; i < 31; i++ {
		if bits[i] != 0 {
			t.Fatalf("expected leading zero bits, got 1 at index %d", i)
		}
	}
	if bits[31] != 1 {
		t.Fatalf("expected final bit to be 1")
	}
}
