package stegocore

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hexlayer/stegocrypt/internal/carrier"
)

// carrierKind is the coarse cover format family resolved from a file
// extension, per §6's "Supported carrier extensions" table.
type carrierKind int

const (
	kindRaster carrierKind = iota
	kindJPEG
	kindWAV
)

func extOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// resolveKind maps a file extension to its carrier family. Any extension
// outside the three supported families is ErrUnsupportedFormat.
func resolveKind(path string) (carrierKind, error) {
	switch extOf(path) {
	case ".png", ".bmp":
		return kindRaster, nil
	case ".jpg", ".jpeg":
		return kindJPEG, nil
	case ".wav":
		return kindWAV, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// checkOutputCompatible rejects an output extension whose carrier family
// differs from the cover's, per §7: a JPEG cover re-saved as PNG would
// silently drop the DCT edits, and a lossless cover re-saved as JPEG
// would destroy the embedded LSBs on recompression.
func checkOutputCompatible(coverKind carrierKind, outputPath string) error {
	outKind, err := resolveKind(outputPath)
	if err != nil {
		return err
	}
	if outKind != coverKind {
		return fmt.Errorf("%w: output %s is not a valid save format for this cover", ErrUnsupportedFormat, outputPath)
	}
	return nil
}

// infoTypeFor reports the MIME-ish info_type for the extension of
// outputPath.
func infoTypeFor(outputPath string) string {
	switch extOf(outputPath) {
	case ".png":
		return "image/png"
	case ".bmp":
		return "image/bmp"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}

// rasterEncode writes img to w in the format implied by outputPath's
// extension (.png or .bmp).
func rasterEncode(img *carrier.RasterImage, outputPath string, w io.Writer) error {
	if extOf(outputPath) == ".bmp" {
		return img.EncodeBMP(w)
	}
	return img.EncodePNG(w)
}
