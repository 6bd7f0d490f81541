package carrier

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hexlayer/stegocrypt/internal/bitcodec"
)

// PcmAudio is an owned raw-byte view of a WAV file: the "fmt " chunk
// parameters kept for validation/capacity reporting, and the "data" chunk
// frame bytes as an independent, mutable buffer. The header (everything
// outside the data chunk payload) is preserved verbatim on save, per
// §4.7's requirement that sample rate, channel count, and width survive
// untouched.
type PcmAudio struct {
	SampleRate    uint32
	NumChannels   uint16
	BitsPerSample uint16

	header     []byte // everything before the data chunk's payload, verbatim
	FrameBytes []byte // owned copy of the data chunk payload
	trailer    []byte // any bytes following the data chunk payload, verbatim
}

// DecodeWAV parses a RIFF/WAVE file by walking its chunks directly,
// rather than through an encoder/decoder round trip, so the original
// header bytes can be preserved byte-for-byte on save.
func DecodeWAV(r io.Reader) (*PcmAudio, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("carrier: not a RIFF/WAVE file")
	}

	pcm := &PcmAudio{}
	offset := 12
	dataStart, dataEnd := -1, -1
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		bodyStart := offset + 8
		bodyEnd := bodyStart + int(chunkSize)
		if bodyEnd > len(data) {
			bodyEnd = len(data)
		}

		switch chunkID {
		case "fmt ":
			if bodyEnd-bodyStart < 16 {
				return nil, fmt.Errorf("carrier: truncated fmt chunk")
			}
			pcm.NumChannels = binary.LittleEndian.Uint16(data[bodyStart+2 : bodyStart+4])
			pcm.SampleRate = binary.LittleEndian.Uint32(data[bodyStart+4 : bodyStart+8])
			pcm.BitsPerSample = binary.LittleEndian.Uint16(data[bodyStart+14 : bodyStart+16])
		case "data":
			dataStart, dataEnd = bodyStart, bodyEnd
		}

		// chunks are word-aligned; an odd chunkSize has one pad byte.
		next := bodyEnd
		if chunkSize%2 == 1 && next < len(data) {
			next++
		}

		if chunkID == "data" {
			pcm.header = append([]byte(nil), data[:offset+8]...)
			pcm.FrameBytes = append([]byte(nil), data[dataStart:dataEnd]...)
			pcm.trailer = append([]byte(nil), data[dataEnd:]...)
			offset = next
			continue
		}
		offset = next
	}

	if dataStart < 0 {
		return nil, fmt.Errorf("carrier: WAV file has no data chunk")
	}
	return pcm, nil
}

// Encode reassembles the WAV file: verbatim header, mutated frame bytes,
// verbatim trailer. The data chunk's declared size is never touched
// because FrameBytes is never resized, only mutated in place.
func (pcm *PcmAudio) Encode(w io.Writer) error {
	if _, err := w.Write(pcm.header); err != nil {
		return err
	}
	if _, err := w.Write(pcm.FrameBytes); err != nil {
		return err
	}
	_, err := w.Write(pcm.trailer)
	return err
}

// EmbedWAV writes payload into the natural byte-LSB order of the frame
// buffer, per §4.7: slot sequence is the raw frame bytes in order, no
// permutation.
func EmbedWAV(pcm *PcmAudio, payload []byte) error {
	stream := buildStream(payload)
	if len(stream) > len(pcm.FrameBytes) {
		return fmt.Errorf("%w: need %d bits, have %d frame bytes", ErrInsufficientCapacity, len(stream), len(pcm.FrameBytes))
	}
	for i, bit := range stream {
		pcm.FrameBytes[i] = (pcm.FrameBytes[i] &^ 1) | bit
	}
	return nil
}

// ExtractWAV is the inverse of EmbedWAV.
func ExtractWAV(pcm *PcmAudio) ([]byte, error) {
	if len(pcm.FrameBytes) < lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}
	headerBits := make([]byte, lengthHeaderBits)
	for i := 0; i < lengthHeaderBits; i++ {
		headerBits[i] = pcm.FrameBytes[i] & 1
	}
	length := bitcodec.BitsToUint(headerBits)
	if length == 0 || length*8 > uint64(len(pcm.FrameBytes))-lengthHeaderBits {
		return nil, ErrNoPayloadDetected
	}
	bodyBits := make([]byte, length*8)
	for i := range bodyBits {
		bodyBits[i] = pcm.FrameBytes[lengthHeaderBits+i] & 1
	}
	return bitcodec.BitsToBytes(bodyBits), nil
}

// WAVCapacity returns the number of payload bytes that fit in the frame
// buffer, accounting for the 32-bit length header.
func (pcm *PcmAudio) WAVCapacity() int {
	if len(pcm.FrameBytes) < lengthHeaderBits {
		return 0
	}
	return (len(pcm.FrameBytes) - lengthHeaderBits) / 8
}
