package carrier

import "testing"

func TestScoreCoverImageLabelBuckets(t *testing.T) {
	uniform := solidGrayImage(64, 64, 100)
	uniformScore := ScoreCoverImage(uniform)
	if uniformScore.Label != "Poor" && uniformScore.Label != "Fair" {
		t.Errorf("uniform low-entropy cover scored %q (%d)", uniformScore.Label, uniformScore.Score)
	}

	textured := randomImage(1920, 1080, 77)
	texturedScore := ScoreCoverImage(textured)
	if texturedScore.Score <= uniformScore.Score {
		t.Errorf("textured cover should score higher than uniform: %d vs %d", texturedScore.Score, uniformScore.Score)
	}
	if texturedScore.AdaptiveCapacity <= 0 {
		t.Error("expected positive adaptive capacity for a large textured cover")
	}
}

func TestRasterCapacityMatchesEligibleSlots(t *testing.T) {
	cover := solidGrayImage(8, 8, 50)
	capacity, err := RasterCapacity(cover, ModeSequential, nil)
	if err != nil {
		t.Fatalf("RasterCapacity: %v", err)
	}
	want := (8*8*3 - lengthHeaderBits) / 8
	if capacity != want {
		t.Errorf("got %d, want %d", capacity, want)
	}
}
