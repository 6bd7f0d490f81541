package carrier

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"github.com/hexlayer/stegocrypt/internal/bitcodec"
)

// lengthHeaderBits is the width of the payload-length prefix written
// before the payload bit stream, per §4.1/§4.5.
const lengthHeaderBits = 32

// RasterImage is an owned, detached RGB pixel buffer decoded from a
// lossless raster cover. It never aliases the decoder's internal storage:
// DecodeRaster always copies pixel values out of the image.Image returned
// by image.Decode before handing back a RasterImage, so mutating Pixels
// can never corrupt decoder state and the decoder can be discarded
// immediately after decode.
type RasterImage struct {
	Width  int
	Height int
	Pixels []byte // row-major RGB, length Width*Height*3
}

// DecodeRaster loads a PNG or BMP cover into an owned pixel buffer.
func DecodeRaster(r io.Reader) (*RasterImage, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("carrier: decode raster: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := (y*width + x) * 3
			pixels[idx] = byte(r16 >> 8)
			pixels[idx+1] = byte(g16 >> 8)
			pixels[idx+2] = byte(b16 >> 8)
		}
	}
	return &RasterImage{Width: width, Height: height, Pixels: pixels}, nil
}

// EncodePNG writes the owned pixel buffer out as a lossless PNG. A fresh
// image.NRGBA is built from Pixels so the encoder never touches the
// decoder's original backing array.
func (img *RasterImage) EncodePNG(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := (y*img.Width + x) * 3
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.Pixels[idx],
				G: img.Pixels[idx+1],
				B: img.Pixels[idx+2],
				A: 0xFF,
			})
		}
	}
	return png.Encode(w, out)
}

// EncodeBMP is the BMP equivalent of EncodePNG, also lossless.
func (img *RasterImage) EncodeBMP(w io.Writer) error {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			idx := (y*img.Width + x) * 3
			out.SetNRGBA(x, y, color.NRGBA{
				R: img.Pixels[idx],
				G: img.Pixels[idx+1],
				B: img.Pixels[idx+2],
				A: 0xFF,
			})
		}
	}
	return bmp.Encode(w, out)
}

// buildStream constructs the length-prefixed bit stream for payload per
// §4.5 step 3: uint_to_bits(|payload|, 32) ++ bytes_to_bits(payload).
func buildStream(payload []byte) []byte {
	header := bitcodec.UintToBits(uint64(len(payload)), lengthHeaderBits)
	body := bitcodec.BytesToBits(payload)
	stream := make([]byte, 0, len(header)+len(body))
	stream = append(stream, header...)
	stream = append(stream, body...)
	return stream
}

// slotsForMode resolves the eligible, permuted-if-applicable slot
// sequence for a raster cover under mode. Adaptive mode requires key;
// sequential mode ignores it.
func slotsForMode(img *RasterImage, mode Mode, key []byte) ([]int, error) {
	switch mode {
	case ModeSequential:
		return EligibleChannels(img.Pixels, img.Width, img.Height, ModeSequential), nil
	case ModeAdaptive:
		if key == nil {
			return nil, ErrMissingKey
		}
		slots := EligibleChannels(img.Pixels, img.Width, img.Height, ModeAdaptive)
		PermuteSlots(slots, key)
		return slots, nil
	default:
		return nil, fmt.Errorf("%w: raster mode %q", ErrUnsupportedFormat, mode)
	}
}

// EmbedRaster writes payload into cover's LSBs per the slot sequence for
// mode, mutating cover in place so it is ready for lossless re-encode.
func EmbedRaster(cover *RasterImage, payload []byte, mode Mode, key []byte) error {
	slots, err := slotsForMode(cover, mode, key)
	if err != nil {
		return err
	}
	stream := buildStream(payload)
	if len(stream) > len(slots) {
		return fmt.Errorf("%w: need %d bits, have %d eligible slots", ErrInsufficientCapacity, len(stream), len(slots))
	}
	for i, bit := range stream {
		slot := slots[i]
		cover.Pixels[slot] = (cover.Pixels[slot] &^ 1) | bit
	}
	return nil
}

// ExtractRaster reads the length-prefixed payload back out of stego per
// the slot sequence for mode.
func ExtractRaster(stego *RasterImage, mode Mode, key []byte) ([]byte, error) {
	slots, err := slotsForMode(stego, mode, key)
	if err != nil {
		return nil, err
	}
	if len(slots) < lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}

	headerBits := make([]byte, lengthHeaderBits)
	for i := 0; i < lengthHeaderBits; i++ {
		headerBits[i] = stego.Pixels[slots[i]] & 1
	}
	length := bitcodec.BitsToUint(headerBits)
	if length == 0 || length*8 > uint64(len(slots))-lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}

	bodyBits := make([]byte, length*8)
	for i := range bodyBits {
		bodyBits[i] = stego.Pixels[slots[lengthHeaderBits+i]] & 1
	}
	return bitcodec.BitsToBytes(bodyBits), nil
}

// RasterCapacity returns the number of payload bytes that fit under mode,
// accounting for the 32-bit length header. key may be nil in adaptive
// mode: the permutation reorders the slots without changing their count.
func RasterCapacity(cover *RasterImage, mode Mode, key []byte) (int, error) {
	if mode == ModeAdaptive && key == nil {
		key = make([]byte, 8)
	}
	slots, err := slotsForMode(cover, mode, key)
	if err != nil {
		return 0, err
	}
	if len(slots) < lengthHeaderBits {
		return 0, nil
	}
	return (len(slots) - lengthHeaderBits) / 8, nil
}
