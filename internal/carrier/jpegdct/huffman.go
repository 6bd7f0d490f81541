package jpegdct

import "fmt"

type huffKey struct {
	length int
	code   int
}

type huffCode struct {
	code   int
	length int
}

// huffTable holds both directions of a single DHT table: decode maps a
// (bit length, code) pair to its symbol, encode maps a symbol back to
// its canonical code and length, needed to re-serialise modified
// coefficients with the exact same Huffman table the cover was decoded
// with.
type huffTable struct {
	decode map[huffKey]byte
	encode map[byte]huffCode
}

// buildHuffmanTable implements the canonical JPEG code assignment from
// ITU-T T.81 Annex C: codes are assigned in order of increasing bit
// length, sequentially within a length, starting from code 0 and
// doubling (shifting left) between lengths.
func buildHuffmanTable(counts [16]byte, values []byte) *huffTable {
	t := &huffTable{
		decode: make(map[huffKey]byte, len(values)),
		encode: make(map[byte]huffCode, len(values)),
	}
	code := 0
	k := 0
	for length := 1; length <= 16; length++ {
		for i := 0; i < int(counts[length-1]); i++ {
			sym := values[k]
			t.decode[huffKey{length, code}] = sym
			t.encode[sym] = huffCode{code: code, length: length}
			code++
			k++
		}
		code <<= 1
	}
	return t
}

func decodeHuffmanSymbol(br *bitReader, t *huffTable) (byte, error) {
	code := 0
	for length := 1; length <= 16; length++ {
		bit, err := br.readBit()
		if err != nil {
			return 0, err
		}
		code = (code << 1) | bit
		if sym, ok := t.decode[huffKey{length, code}]; ok {
			return sym, nil
		}
	}
	return 0, fmt.Errorf("jpegdct: no matching huffman code")
}

func encodeHuffmanSymbol(bw *bitWriter, t *huffTable, sym byte) error {
	c, ok := t.encode[sym]
	if !ok {
		return fmt.Errorf("jpegdct: symbol %#x not present in huffman table", sym)
	}
	bw.writeBits(c.code, c.length)
	return nil
}
