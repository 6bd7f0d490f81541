package jpegdct

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// newSingleBlockTestImage builds a one-component, one-block (8x8) Image
// directly (bypassing Decode's marker parsing) with hand-built header
// bytes that Decode can still re-parse, so tests can exercise the full
// Encode -> Decode round trip.
func newSingleBlockTestImage(t *testing.T) (*Image, []byte) {
	t.Helper()

	dcSymbols := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	acSymbols := []byte{0x00, 0xF0, 0x01, 0x02, 0x03, 0x11, 0x12, 0x21, 0x04, 0x05}

	dht := append(tablePayload(0x00, dcSymbols), tablePayload(0x10, acSymbols)...)

	var sof bytes.Buffer
	sof.WriteByte(8) // precision
	binary.Write(&sof, binary.BigEndian, uint16(8))
	binary.Write(&sof, binary.BigEndian, uint16(8))
	sof.WriteByte(1)             // numComponents
	sof.Write([]byte{1, 0x11, 0}) // id, H=V=1, Tq=0

	sos := []byte{1, 1, 0x00, 0, 63, 0}

	header := []byte{0xFF, 0xD8}
	header = append(header, marker(markerSOF0, sof.Bytes())...)
	header = append(header, marker(markerDHT, dht)...)
	header = append(header, marker(markerSOS, sos)...)

	img := &Image{
		Width: 8, Height: 8,
		headerBytes: header,
		huffDC:      map[int]*huffTable{0: buildHuffmanTable(countsAllAtMax(len(dcSymbols)), dcSymbols)},
		huffAC:      map[int]*huffTable{0: buildHuffmanTable(countsAllAtMax(len(acSymbols)), acSymbols)},
		maxH:        1, maxV: 1,
		mcusPerLine: 1, mcusPerCol: 1,
		scanOrder: []int{0},
	}
	c := &component{
		id: 1, h: 1, v: 1,
		dcTableID: 0, acTableID: 0,
		blocksPerLine: 1, blocksPerColumn: 1,
		blocks: make([][64]int16, 1),
	}
	img.components = []*component{c}
	return img, header
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img, _ := newSingleBlockTestImage(t)
	c := img.components[0]
	c.blocks[0][0] = 50 // DC
	c.blocks[0][zigzagOrder[1]] = 2
	c.blocks[0][zigzagOrder[3]] = -3

	var buf bytes.Buffer
	if err := img.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Width != 8 || decoded.Height != 8 {
		t.Fatalf("unexpected dimensions: %dx%d", decoded.Width, decoded.Height)
	}

	want := c.blocks[0]
	got := decoded.components[0].blocks[0]
	if got != want {
		t.Fatalf("coefficient mismatch: got %v, want %v", got, want)
	}
}

func TestCoefficientAtSetCoefficientAt(t *testing.T) {
	img, _ := newSingleBlockTestImage(t)
	img.SetCoefficientAt(0, 3, 5, 42)
	if got := img.CoefficientAt(0, 3, 5); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := img.CoefficientAt(0, 0, 0); got != 0 {
		t.Fatalf("unrelated coefficient mutated: got %d", got)
	}
}

func TestPlaneDims(t *testing.T) {
	img, _ := newSingleBlockTestImage(t)
	rows, cols := img.PlaneDims(0)
	if rows != 8 || cols != 8 {
		t.Fatalf("got %dx%d, want 8x8", rows, cols)
	}
}
