package stegocore

import (
	"fmt"
	"os"

	"github.com/hexlayer/stegocrypt/internal/carrier"
)

// Mode re-exports carrier's steganography-mode identifiers.
type Mode = carrier.Mode

const (
	ModeAdaptive   = carrier.ModeAdaptive
	ModeSequential = carrier.ModeSequential
)

// Embed writes payload into coverPath's cover under mode (ignored for
// JPEG and WAV covers, which each have exactly one embedding scheme),
// saving the stego carrier to outputPath. key is required for adaptive
// mode and ignored otherwise.
//
// outputPath's extension must belong to the same carrier family as
// coverPath's: a JPEG cover must be saved as .jpg/.jpeg (re-saving as
// PNG would silently drop the DCT coefficient edits on the next lossy
// recompression), and a lossless raster cover must be saved as
// .png/.bmp (saving as JPEG would destroy the embedded LSBs).
func Embed(coverPath string, payload []byte, outputPath string, key []byte, mode Mode) error {
	kind, err := resolveKind(coverPath)
	if err != nil {
		return err
	}
	if err := checkOutputCompatible(kind, outputPath); err != nil {
		return err
	}

	in, err := os.Open(coverPath)
	if err != nil {
		return fmt.Errorf("stegocore: open cover %s: %w", coverPath, err)
	}
	defer in.Close()

	switch kind {
	case kindRaster:
		cover, err := carrier.DecodeRaster(in)
		if err != nil {
			return err
		}
		if err := carrier.EmbedRaster(cover, payload, mode, key); err != nil {
			return err
		}
		return writeOutput(outputPath, func(w *os.File) error {
			return rasterEncode(cover, outputPath, w)
		})

	case kindJPEG:
		img, err := carrier.DecodeJPEG(in)
		if err != nil {
			return err
		}
		if err := carrier.EmbedJPEG(img, payload); err != nil {
			return err
		}
		return writeOutput(outputPath, func(w *os.File) error {
			return carrier.EncodeJPEG(img, w)
		})

	case kindWAV:
		pcm, err := carrier.DecodeWAV(in)
		if err != nil {
			return err
		}
		if err := carrier.EmbedWAV(pcm, payload); err != nil {
			return err
		}
		return writeOutput(outputPath, func(w *os.File) error {
			return pcm.Encode(w)
		})

	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, coverPath)
	}
}

// writeOutput creates outputPath, runs encode against it, and removes
// the partial file if encode fails, per §7's "no partial state exposed"
// requirement.
func writeOutput(outputPath string, encode func(*os.File) error) error {
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("stegocore: create output %s: %w", outputPath, err)
	}

	if err := encode(out); err != nil {
		out.Close()
		os.Remove(outputPath)
		return err
	}
	return out.Close()
}
