package cryptocore

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// Compress zstd-compresses data before encryption, trimming payload size for
// embedding. Compression happens on plaintext so the resulting ciphertext
// stays indistinguishable from random noise regardless of payload content.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func Decompress(data []byte) ([]byte, error) {
	r, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.DecodeAll(data, nil)
}
