package carrier

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func solidGrayImage(width, height int, gray byte) *RasterImage {
	pixels := make([]byte, width*height*3)
	for i := range pixels {
		pixels[i] = gray
	}
	return &RasterImage{Width: width, Height: height, Pixels: pixels}
}

func randomImage(width, height int, seed uint64) *RasterImage {
	pixels := make([]byte, width*height*3)
	rng := rand.New(rand.NewPCG(seed, seed))
	for i := range pixels {
		pixels[i] = byte(rng.IntN(256))
	}
	return &RasterImage{Width: width, Height: height, Pixels: pixels}
}

func TestSequentialRoundTrip(t *testing.T) {
	cover := solidGrayImage(64, 64, 128)
	payload := []byte("hello")

	if err := EmbedRaster(cover, payload, ModeSequential, nil); err != nil {
		t.Fatalf("EmbedRaster: %v", err)
	}
	got, err := ExtractRaster(cover, ModeSequential, nil)
	if err != nil {
		t.Fatalf("ExtractRaster: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestAdaptiveRoundTripOnTexturedCover(t *testing.T) {
	cover := randomImage(256, 256, 42)
	payload := make([]byte, 1024)
	rng := rand.New(rand.NewPCG(7, 7))
	for i := range payload {
		payload[i] = byte(rng.IntN(256))
	}
	key := []byte("0123456789abcdef0123456789abcdef")

	if err := EmbedRaster(cover, payload, ModeAdaptive, key); err != nil {
		t.Fatalf("EmbedRaster: %v", err)
	}
	got, err := ExtractRaster(cover, ModeAdaptive, key)
	if err != nil {
		t.Fatalf("ExtractRaster: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("adaptive round trip mismatch, got %d bytes want %d", len(got), len(payload))
	}
}

func TestAdaptiveMaskInvariantUnderEmbedding(t *testing.T) {
	cover := randomImage(128, 128, 99)
	before := ComputeMask(cover.Pixels, cover.Width, cover.Height)

	key := []byte("passphrase-derived-key-material!")
	if err := EmbedRaster(cover, []byte("payload data for masking test"), ModeAdaptive, key); err != nil {
		t.Fatalf("EmbedRaster: %v", err)
	}

	after := ComputeMask(cover.Pixels, cover.Width, cover.Height)
	if len(before) != len(after) {
		t.Fatalf("mask length changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("mask changed at index %d after embedding: %v -> %v", i, before[i], after[i])
		}
	}
}

func TestAdaptiveRequiresKey(t *testing.T) {
	cover := randomImage(32, 32, 1)
	if err := EmbedRaster(cover, []byte("x"), ModeAdaptive, nil); err != ErrMissingKey {
		t.Fatalf("got %v, want ErrMissingKey", err)
	}
}

func TestCapacityRejection(t *testing.T) {
	cover := solidGrayImage(8, 8, 200)
	payload := make([]byte, 1024)
	err := EmbedRaster(cover, payload, ModeSequential, nil)
	if err == nil {
		t.Fatal("expected InsufficientCapacity error")
	}
}

func TestExtractRejectsZeroLength(t *testing.T) {
	cover := solidGrayImage(16, 16, 10)
	// Every slot LSB already 0 (10 &^ 1 == 10, LSB is 0), so the header
	// decodes to length 0 without any embedding having happened.
	_, err := ExtractRaster(cover, ModeSequential, nil)
	if err != ErrNoPayloadDetected {
		t.Fatalf("got %v, want ErrNoPayloadDetected", err)
	}
}
