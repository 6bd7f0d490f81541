package carrier

import (
	"io"

	"github.com/hexlayer/stegocrypt/internal/bitcodec"
	"github.com/hexlayer/stegocrypt/internal/carrier/jpegdct"
)

// jpegSlot addresses one DCT coefficient as a (plane, row, column)
// triple, per §3's Slot definition for JPEG covers.
type jpegSlot struct {
	plane, row, col int
}

// DecodeJPEG loads a baseline JPEG cover down to its DCT coefficient
// planes.
func DecodeJPEG(r io.Reader) (*jpegdct.Image, error) {
	return jpegdct.Decode(r)
}

// EncodeJPEG writes img back out, preserving the modified coefficient
// tables with no re-quantisation or pixel round trip.
func EncodeJPEG(img *jpegdct.Image, w io.Writer) error {
	return img.Encode(w)
}

// jpegEligibleSlots enumerates every DCT coefficient whose value lies
// outside the skip set {-1, 0, 1}, in plane-major, row-major,
// column-major traversal order, per §3 and §4.6.
func jpegEligibleSlots(img *jpegdct.Image) []jpegSlot {
	var slots []jpegSlot
	for plane := 0; plane < img.NumPlanes(); plane++ {
		rows, cols := img.PlaneDims(plane)
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				v := img.CoefficientAt(plane, row, col)
				if v == -1 || v == 0 || v == 1 {
					continue
				}
				slots = append(slots, jpegSlot{plane, row, col})
			}
		}
	}
	return slots
}

// EmbedJPEG writes payload into the LSBs of eligible DCT coefficients, in
// natural traversal order (no permutation for JPEG, per §4.4).
func EmbedJPEG(img *jpegdct.Image, payload []byte) error {
	slots := jpegEligibleSlots(img)
	stream := buildStream(payload)
	if len(stream) > len(slots) {
		return ErrInsufficientCapacity
	}
	for i, bit := range stream {
		s := slots[i]
		c := img.CoefficientAt(s.plane, s.row, s.col)
		// Set the LSB of the magnitude and keep the sign, so an eligible
		// coefficient never lands in the skip set (-2 becomes -3, not -1).
		// For negative c the magnitude's LSB equals c&1, which is what
		// ExtractJPEG reads.
		if c < 0 {
			c = -((-c)&^1 | int16(bit))
		} else {
			c = (c &^ 1) | int16(bit)
		}
		img.SetCoefficientAt(s.plane, s.row, s.col, c)
	}
	return nil
}

// ExtractJPEG is the inverse of EmbedJPEG.
func ExtractJPEG(img *jpegdct.Image) ([]byte, error) {
	slots := jpegEligibleSlots(img)
	if len(slots) < lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}
	headerBits := make([]byte, lengthHeaderBits)
	for i := 0; i < lengthHeaderBits; i++ {
		s := slots[i]
		headerBits[i] = byte(img.CoefficientAt(s.plane, s.row, s.col) & 1)
	}
	length := bitcodec.BitsToUint(headerBits)
	if length == 0 || length*8 > uint64(len(slots))-lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}
	bodyBits := make([]byte, length*8)
	for i := range bodyBits {
		s := slots[lengthHeaderBits+i]
		bodyBits[i] = byte(img.CoefficientAt(s.plane, s.row, s.col) & 1)
	}
	return bitcodec.BitsToBytes(bodyBits), nil
}

// JPEGCapacity returns the number of payload bytes that fit in img's
// eligible DCT coefficients.
func JPEGCapacity(img *jpegdct.Image) int {
	n := len(jpegEligibleSlots(img))
	if n < lengthHeaderBits {
		return 0
	}
	return (n - lengthHeaderBits) / 8
}
