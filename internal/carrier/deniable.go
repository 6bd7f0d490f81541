package carrier

import (
	"fmt"

	"github.com/hexlayer/stegocrypt/internal/bitcodec"
)

// PartitionSeedSize is the length in bytes of the deniable-mode partition
// seed, shared verbatim between the real and decoy key-files.
const PartitionSeedSize = 16

// SplitEligibleChannels builds the full eligible channel list from the
// adaptive mask, shuffles it with a PRNG seeded from the 128-bit
// partition_seed, and splits it at the midpoint into two disjoint halves,
// per §4.8 steps 1-3.
func SplitEligibleChannels(cover *RasterImage, partitionSeed []byte) (half0, half1 []int) {
	all := EligibleChannels(cover.Pixels, cover.Width, cover.Height, ModeAdaptive)
	hi, lo := be128(partitionSeed)
	rng := newPermutationRNGFrom128(hi, lo)
	shuffle(all, rng)

	mid := len(all) / 2
	half0 = append([]int(nil), all[:mid]...)
	half1 = append([]int(nil), all[mid:]...)
	return half0, half1
}

// EmbedDeniable writes the real payload into half_0 (re-shuffled by the
// real key) and the decoy payload into half_1 (re-shuffled by the decoy
// key), per §4.8 steps 4-5. The two halves are disjoint by construction,
// so writes for one payload can never overwrite slots of the other.
func EmbedDeniable(cover *RasterImage, realPayload, decoyPayload, realKey, decoyKey, partitionSeed []byte) error {
	half0, half1 := SplitEligibleChannels(cover, partitionSeed)
	PermuteSlots(half0, realKey)
	PermuteSlots(half1, decoyKey)

	if err := embedInto(cover, half0, realPayload); err != nil {
		return fmt.Errorf("carrier: embed real payload: %w", err)
	}
	if err := embedInto(cover, half1, decoyPayload); err != nil {
		return fmt.Errorf("carrier: embed decoy payload: %w", err)
	}
	return nil
}

// ExtractDeniable reconstructs the half identified by partitionHalf (0 =
// real, 1 = decoy) from partitionSeed, re-shuffles it with key, and reads
// the length-prefixed payload back out.
func ExtractDeniable(stego *RasterImage, key, partitionSeed []byte, partitionHalf int) ([]byte, error) {
	half0, half1 := SplitEligibleChannels(stego, partitionSeed)
	var half []int
	switch partitionHalf {
	case 0:
		half = half0
	case 1:
		half = half1
	default:
		return nil, fmt.Errorf("carrier: invalid partition_half %d, want 0 or 1", partitionHalf)
	}
	PermuteSlots(half, key)
	return extractFrom(stego, half)
}

func embedInto(cover *RasterImage, slots []int, payload []byte) error {
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

func extractFrom(stego *RasterImage, slots []int) ([]byte, error) {
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
