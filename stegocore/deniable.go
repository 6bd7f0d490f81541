package stegocore

import (
	"fmt"
	"os"

	"github.com/hexlayer/stegocrypt/internal/carrier"
)

// PartitionSeedSize is the required length in bytes of the partitionSeed
// argument to EmbedDeniable/ExtractDeniable.
const PartitionSeedSize = carrier.PartitionSeedSize

// EmbedDeniable writes two independently recoverable payloads into
// disjoint halves of coverPath's adaptive-eligible channels, saving the
// stego carrier to outputPath. Deniable mode only exists for lossless
// raster covers (PNG/BMP) under adaptive mode: the Python original's
// interactive flow enforces "deniable requires adaptive mode" before
// ever reaching the embed step, so this does too rather than silently
// running sequential deniable embeds that a reviewer can't distinguish
// from adaptive ones by inspecting the channel split.
func EmbedDeniable(coverPath string, realPayload, decoyPayload []byte, outputPath string, realKey, decoyKey, partitionSeed []byte) error {
	kind, err := resolveKind(coverPath)
	if err != nil {
		return err
	}
	if kind != kindRaster {
		return fmt.Errorf("%w: deniable mode requires a lossless raster cover, got %s", ErrUnsupportedFormat, coverPath)
	}
	if err := checkOutputCompatible(kind, outputPath); err != nil {
		return err
	}

	in, err := os.Open(coverPath)
	if err != nil {
		return fmt.Errorf("stegocore: open cover %s: %w", coverPath, err)
	}
	defer in.Close()

	cover, err := carrier.DecodeRaster(in)
	if err != nil {
		return err
	}
	if err := carrier.EmbedDeniable(cover, realPayload, decoyPayload, realKey, decoyKey, partitionSeed); err != nil {
		return err
	}

	return writeOutput(outputPath, func(w *os.File) error {
		return rasterEncode(cover, outputPath, w)
	})
}

// ExtractDeniable recovers the payload embedded in the half identified
// by partitionHalf (0 = real, 1 = decoy) of stegoPath's adaptive-eligible
// channels.
func ExtractDeniable(stegoPath string, key, partitionSeed []byte, partitionHalf int) ([]byte, error) {
	kind, err := resolveKind(stegoPath)
	if err != nil {
		return nil, err
	}
	if kind != kindRaster {
		return nil, fmt.Errorf("%w: deniable mode requires a lossless raster cover, got %s", ErrUnsupportedFormat, stegoPath)
	}

	in, err := os.Open(stegoPath)
	if err != nil {
		return nil, fmt.Errorf("stegocore: open stego %s: %w", stegoPath, err)
	}
	defer in.Close()

	stego, err := carrier.DecodeRaster(in)
	if err != nil {
		return nil, err
	}
	return carrier.ExtractDeniable(stego, key, partitionSeed, partitionHalf)
}
