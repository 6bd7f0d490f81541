package stegocore

import (
	"fmt"
	"os"

	"github.com/hexlayer/stegocrypt/internal/carrier"
)

// CapacityReport re-exports carrier's capacity result shape.
type CapacityReport = carrier.CapacityReport

// ScoreReport re-exports carrier's cover-scoring result shape.
type ScoreReport = carrier.ScoreReport

// GetCapacity reports how many payload bytes fit in path under mode
// (ignored for JPEG and WAV covers, which each have a single, fixed
// eligible-slot policy), dispatching on path's carrier family exactly
// like Embed/Extract do.
func GetCapacity(path string, mode Mode, key []byte) (CapacityReport, error) {
	kind, err := resolveKind(path)
	if err != nil {
		return CapacityReport{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return CapacityReport{}, fmt.Errorf("stegocore: open %s: %w", path, err)
	}
	defer f.Close()

	switch kind {
	case kindRaster:
		cover, err := carrier.DecodeRaster(f)
		if err != nil {
			return CapacityReport{}, err
		}
		available, err := carrier.RasterCapacity(cover, mode, key)
		if err != nil {
			return CapacityReport{}, err
		}
		return CapacityReport{AvailableBytes: available, Mode: mode}, nil

	case kindJPEG:
		img, err := carrier.DecodeJPEG(f)
		if err != nil {
			return CapacityReport{}, err
		}
		return CapacityReport{AvailableBytes: carrier.JPEGCapacity(img), Mode: carrier.ModeDCT}, nil

	case kindWAV:
		pcm, err := carrier.DecodeWAV(f)
		if err != nil {
			return CapacityReport{}, err
		}
		return CapacityReport{AvailableBytes: pcm.WAVCapacity(), Mode: mode}, nil

	default:
		return CapacityReport{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ScoreCoverImage computes the advisory cover-quality heuristic for a
// lossless raster image at path. It is raster-only: scoring a JPEG (no
// stable LSB plane) or a WAV (no 2-D texture/entropy notion) cover is
// meaningless under the §6 formula, so both return ErrUnsupportedFormat.
func ScoreCoverImage(path string) (ScoreReport, error) {
	kind, err := resolveKind(path)
	if err != nil {
		return ScoreReport{}, err
	}
	if kind != kindRaster {
		return ScoreReport{}, fmt.Errorf("%w: cover scoring only applies to raster images, got %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return ScoreReport{}, fmt.Errorf("stegocore: open %s: %w", path, err)
	}
	defer f.Close()

	cover, err := carrier.DecodeRaster(f)
	if err != nil {
		return ScoreReport{}, err
	}
	return carrier.ScoreCoverImage(cover), nil
}
