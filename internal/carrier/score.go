package carrier

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// CapacityReport is the result of GetCapacity: the number of payload
// bytes that fit under a given mode.
type CapacityReport struct {
	AvailableBytes int
	Mode           Mode
}

// ScoreReport is the result of ScoreCoverImage: an advisory heuristic for
// how good a candidate cover image is for adaptive embedding.
type ScoreReport struct {
	Entropy            float64
	TextureDensity     float64
	AdaptiveCapacity   int
	SequentialCapacity int
	Score              int
	Label              string
	Width              int
	Height             int
}

// shannonEntropy computes the Shannon entropy, in bits, of the byte-value
// distribution across all RGB channel samples. The 256-bin histogram is
// normalised into a probability distribution and handed to gonum's
// stat.Entropy, which returns nats; converted to bits by dividing by
// ln(2).
func shannonEntropy(pixels []byte) float64 {
	var histogram [256]int
	for _, v := range pixels {
		histogram[v]++
	}
	total := float64(len(pixels))
	if total == 0 {
		return 0
	}
	probs := make([]float64, 0, 256)
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		probs = append(probs, float64(count)/total)
	}
	return stat.Entropy(probs) / math.Ln2
}

// ScoreCoverImage computes the advisory cover-quality heuristic from
// §6: weighted blend of normalised entropy, texture density, and
// resolution, bucketed into a human label.
func ScoreCoverImage(cover *RasterImage) ScoreReport {
	mask := ComputeMask(cover.Pixels, cover.Width, cover.Height)
	texturedCount := 0
	for _, eligible := range mask {
		if eligible {
			texturedCount++
		}
	}
	textureDensity := float64(texturedCount) / float64(len(mask))

	entropy := shannonEntropy(cover.Pixels)

	adaptiveSlots := texturedCount * 3
	adaptiveCapacity := 0
	if adaptiveSlots >= lengthHeaderBits {
		adaptiveCapacity = (adaptiveSlots - lengthHeaderBits) / 8
	}
	sequentialSlots := cover.Width * cover.Height * 3
	sequentialCapacity := 0
	if sequentialSlots >= lengthHeaderBits {
		sequentialCapacity = (sequentialSlots - lengthHeaderBits) / 8
	}

	e := entropy / 8.0
	t := math.Min(1, textureDensity/0.5)
	d := math.Min(1, float64(cover.Width*cover.Height)/(1920.0*1080.0))
	score := int(math.Round(100 * (0.40*e + 0.40*t + 0.20*d)))

	var label string
	switch {
	case score >= 75:
		label = "Excellent"
	case score >= 55:
		label = "Good"
	case score >= 35:
		label = "Fair"
	default:
		label = "Poor"
	}

	return ScoreReport{
		Entropy:            entropy,
		TextureDensity:     textureDensity,
		AdaptiveCapacity:   adaptiveCapacity,
		SequentialCapacity: sequentialCapacity,
		Score:              score,
		Label:              label,
		Width:              cover.Width,
		Height:             cover.Height,
	}
}
