package carrier

import (
	"bytes"
	"testing"

	"github.com/hexlayer/stegocrypt/internal/carrier/jpegdct"
)

// buildLargeTestJPEG constructs a multi-block single-component Image
// directly, bypassing marker parsing, with enough AC coefficients spread
// across many values to give EmbedJPEG eligible slots to use.
func buildLargeTestJPEG(t *testing.T, blocksPerLine, blocksPerColumn int) *jpegdct.Image {
	t.Helper()
	return jpegdct.NewSyntheticForTest(blocksPerLine, blocksPerColumn)
}

func TestJPEGRoundTrip(t *testing.T) {
	img := buildLargeTestJPEG(t, 8, 8)
	payload := []byte("secret")

	if err := EmbedJPEG(img, payload); err != nil {
		t.Fatalf("EmbedJPEG: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeJPEG(img, &buf); err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}

	reloaded, err := DecodeJPEG(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeJPEG: %v", err)
	}
	got, err := ExtractJPEG(reloaded)
	if err != nil {
		t.Fatalf("ExtractJPEG: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("got %q, want %q", got, payload)
	}
}

func TestJPEGEligibleSlotsSkipSmallCoefficients(t *testing.T) {
	img := buildLargeTestJPEG(t, 4, 4)
	slots := jpegEligibleSlots(img)
	for _, s := range slots {
		v := img.CoefficientAt(s.plane, s.row, s.col)
		if v == -1 || v == 0 || v == 1 {
			t.Fatalf("eligible slot holds skip-set value %d", v)
		}
	}
}
