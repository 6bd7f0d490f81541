package stegocore

import (
	"fmt"
	"os"

	"github.com/hexlayer/stegocrypt/internal/carrier"
)

// Extract is the inverse of Embed: it reads the length-prefixed payload
// back out of stegoPath using the same mode and key used to embed it.
func Extract(stegoPath string, key []byte, mode Mode) ([]byte, error) {
	kind, err := resolveKind(stegoPath)
	if err != nil {
		return nil, err
	}

	in, err := os.Open(stegoPath)
	if err != nil {
		return nil, fmt.Errorf("stegocore: open stego %s: %w", stegoPath, err)
	}
	defer in.Close()

	switch kind {
	case kindRaster:
		stego, err := carrier.DecodeRaster(in)
		if err != nil {
			return nil, err
		}
		return carrier.ExtractRaster(stego, mode, key)

	case kindJPEG:
		img, err := carrier.DecodeJPEG(in)
		if err != nil {
			return nil, err
		}
		return carrier.ExtractJPEG(img)

	case kindWAV:
		pcm, err := carrier.DecodeWAV(in)
		if err != nil {
			return nil, err
		}
		return carrier.ExtractWAV(pcm)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, stegoPath)
	}
}
