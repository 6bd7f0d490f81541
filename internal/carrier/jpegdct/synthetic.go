package jpegdct

import (
	"bytes"
	"encoding/binary"
)

// NewSyntheticForTest builds a deterministic, single-component baseline
// JPEG Image with blocksPerLine*blocksPerColumn blocks of varied DC/AC
// coefficients and real, re-parseable header bytes (SOI/SOF0/DHT/SOS), so
// downstream packages can exercise Encode/Decode round trips and
// coefficient-level embedding without needing an actual JPEG file on
// disk. It is exported for use by other packages' tests only.
func NewSyntheticForTest(blocksPerLine, blocksPerColumn int) *Image {
	dcSymbols := make([]byte, 12)
	for i := range dcSymbols {
		dcSymbols[i] = byte(i)
	}
	acSymbols := make([]byte, 0, 16*9)
	for run := 0; run < 16; run++ {
		for size := 0; size < 9; size++ {
			acSymbols = append(acSymbols, byte(run<<4|size))
		}
	}

	dht := append(tablePayload(0x00, dcSymbols), tablePayload(0x10, acSymbols)...)

	width := blocksPerLine * 8
	height := blocksPerColumn * 8

	var sof bytes.Buffer
	sof.WriteByte(8) // precision
	binary.Write(&sof, binary.BigEndian, uint16(height))
	binary.Write(&sof, binary.BigEndian, uint16(width))
	sof.WriteByte(1)              // numComponents
	sof.Write([]byte{1, 0x11, 0}) // id, H=V=1, Tq=0

	sos := []byte{1, 1, 0x00, 0, 63, 0}

	header := []byte{0xFF, 0xD8}
	header = append(header, marker(markerSOF0, sof.Bytes())...)
	header = append(header, marker(markerDHT, dht)...)
	header = append(header, marker(markerSOS, sos)...)

	img := &Image{
		Width: width, Height: height,
		headerBytes: header,
		huffDC:      map[int]*huffTable{0: buildHuffmanTable(countsAllAtMax(len(dcSymbols)), dcSymbols)},
		huffAC:      map[int]*huffTable{0: buildHuffmanTable(countsAllAtMax(len(acSymbols)), acSymbols)},
		maxH:        1, maxV: 1,
		mcusPerLine: blocksPerLine, mcusPerCol: blocksPerColumn,
		scanOrder: []int{0},
	}

	numBlocks := blocksPerLine * blocksPerColumn
	c := &component{
		id: 1, h: 1, v: 1,
		dcTableID: 0, acTableID: 0,
		blocksPerLine: blocksPerLine, blocksPerColumn: blocksPerColumn,
		blocks: make([][64]int16, numBlocks),
	}

	// A 14-value cycle spanning several Huffman size categories and
	// including the skip-set values 0/1/-1, offset per block so
	// neighbouring blocks don't all carry identical coefficients.
	cycle := []int16{0, 1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6, 7}
	for b := 0; b < numBlocks; b++ {
		var block [64]int16
		block[0] = 16 // DC: constant, so every block after the first has a zero predictor diff
		for i := 1; i < 64; i++ {
			block[i] = cycle[(i+b)%len(cycle)]
		}
		c.blocks[b] = block
	}
	img.components = []*component{c}
	return img
}
