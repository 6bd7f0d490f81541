package carrier

import "testing"

func TestComputeMaskUniformImageIsUntextured(t *testing.T) {
	cover := solidGrayImage(16, 16, 128)
	mask := ComputeMask(cover.Pixels, cover.Width, cover.Height)
	for i, eligible := range mask {
		if eligible {
			t.Fatalf("pixel %d of a uniform image was marked textured", i)
		}
	}
}

func TestComputeMaskIgnoresLSBs(t *testing.T) {
	cover := randomImage(32, 32, 5)
	before := ComputeMask(cover.Pixels, cover.Width, cover.Height)

	flipped := make([]byte, len(cover.Pixels))
	for i, v := range cover.Pixels {
		flipped[i] = v ^ 1
	}
	after := ComputeMask(flipped, cover.Width, cover.Height)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("mask differs at pixel %d after flipping only LSBs", i)
		}
	}
}

func TestPermuteSlotsDeterministic(t *testing.T) {
	key := []byte("same-key-material-used-for-both")
	slots1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	slots2 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	PermuteSlots(slots1, key)
	PermuteSlots(slots2, key)

	for i := range slots1 {
		if slots1[i] != slots2[i] {
			t.Fatalf("permutation not deterministic at index %d: %d vs %d", i, slots1[i], slots2[i])
		}
	}
}

func TestPermuteSlotsDiffersAcrossKeys(t *testing.T) {
	slotsA := make([]int, 100)
	slotsB := make([]int, 100)
	for i := range slotsA {
		slotsA[i] = i
		slotsB[i] = i
	}
	PermuteSlots(slotsA, []byte("key-one-material-32-bytes-long!"))
	PermuteSlots(slotsB, []byte("key-two-material-32-bytes-long!"))

	identical := true
	for i := range slotsA {
		if slotsA[i] != slotsB[i] {
			identical = false
			break
		}
	}
	if identical {
		t.Fatal("different keys produced identical permutations")
	}
}
