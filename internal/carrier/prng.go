package carrier

import "math/rand/v2"

// PRNGName is recorded in key-files as the "prng" field, pinning the slot
// permutation algorithm as a wire-format commitment: embed and extract
// must produce bit-identical shuffles from the same seed, which requires
// agreeing not just on "a PCG" but on this exact seeding scheme.
const PRNGName = "pcg-dxsm-128-64-v1"

// seedTweak distinguishes the PCG's second 64-bit seed word from its
// first when only a single 8-byte seed is available (math/rand/v2's PCG
// takes two independent words, but the permutation contract is defined in
// terms of one be_u64 seed). A fixed constant, not a secret.
const seedTweak = 0x9E3779B97F4A7C15

// newPermutationRNG builds the deterministic PRNG used for slot
// permutation, seeded from the first 8 bytes of the derived key
// interpreted as a big-endian unsigned integer.
func newPermutationRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedTweak))
}

// newPermutationRNGFrom128 seeds the PRNG from two independent 64-bit
// words directly (used for partition_seed, which is 16 bytes wide and so
// supplies both PCG seed words without any derived tweak).
func newPermutationRNGFrom128(hi, lo uint64) *rand.Rand {
	return rand.New(rand.NewPCG(hi, lo))
}

// shuffle performs an in-place Fisher-Yates permutation of slots using
// rng, matching the Fisher-Yates shuffle implied by the source's
// "seed a PRNG, shuffle in place" construction.
func shuffle(slots []int, rng *rand.Rand) {
	for i := len(slots) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}
}

// be64 interprets the first 8 bytes of b as a big-endian uint64. Callers
// must ensure len(b) >= 8.
func be64(b []byte) uint64 {
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])
}

// be128 splits the first 16 bytes of b into two big-endian uint64 words.
func be128(b []byte) (hi, lo uint64) {
	return be64(b[0:8]), be64(b[8:16])
}
