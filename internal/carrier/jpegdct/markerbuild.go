package jpegdct

// marker wraps payload in a standard length-prefixed JPEG marker segment.
func marker(code byte, payload []byte) []byte {
	out := []byte{0xFF, code}
	length := len(payload) + 2
	out = append(out, byte(length>>8), byte(length))
	return append(out, payload...)
}

// tablePayload builds one DHT sub-table (class/id byte, 16 count bytes,
// value bytes), putting every symbol at the same code length (16) so the
// resulting table is trivially prefix-free regardless of symbol count.
func tablePayload(classAndID byte, symbols []byte) []byte {
	counts := countsAllAtMax(len(symbols))
	payload := []byte{classAndID}
	payload = append(payload, counts[:]...)
	return append(payload, symbols...)
}

func countsAllAtMax(n int) [16]byte {
	var counts [16]byte
	counts[15] = byte(n)
	return counts
}
