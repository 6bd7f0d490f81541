package carrier

import "gonum.org/v1/gonum/stat"

// varianceThreshold is the value that the 3x3 neighbourhood variance of the
// zeroed-LSB grayscale image must exceed for a pixel to be considered
// "textured" and thus eligible for adaptive embedding.
const varianceThreshold = 10.0

// ComputeMask returns a width*height boolean eligibility map for adaptive
// embedding, per the critical invariant that LSB mutation must never
// change the mask: LSBs are zeroed on every channel before the grayscale
// projection and variance computation, so a stego image produces exactly
// the same mask as its cover.
func ComputeMask(pixels []byte, width, height int) []bool {
	gray := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := (y*width + x) * 3
			r := float64(pixels[idx] &^ 1)
			g := float64(pixels[idx+1] &^ 1)
			b := float64(pixels[idx+2] &^ 1)
			gray[y*width+x] = (r + g + b) / 3.0
		}
	}

	// reflect-pad gray by one pixel on each side (edge row/column mirrored).
	padW, padH := width+2, height+2
	padded := make([]float64, padW*padH)
	at := func(y, x int) float64 { return gray[y*width+x] }
	reflect := func(v, n int) int {
		if v < 0 {
			return -v - 1
		}
		if v >= n {
			return 2*n - v - 1
		}
		return v
	}
	for py := 0; py < padH; py++ {
		sy := reflect(py-1, height)
		for px := 0; px < padW; px++ {
			sx := reflect(px-1, width)
			padded[py*padW+px] = at(sy, sx)
		}
	}

	mask := make([]bool, width*height)
	window := make([]float64, 9)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := 0
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					window[n] = padded[(y+dy)*padW+(x+dx)]
					n++
				}
			}
			mask[y*width+x] = windowVariance(window) > varianceThreshold
		}
	}
	return mask
}

// windowVariance computes the population variance of a fixed 9-sample
// window, matching the numpy default ddof=0 behaviour of the source
// implementation. gonum's stat.Variance is the sample (ddof=1) variance,
// so it is rescaled by (n-1)/n to recover the population value rather
// than hand-rolling the sum-of-squares math.
func windowVariance(samples []float64) float64 {
	n := float64(len(samples))
	sample := stat.Variance(samples, nil)
	return sample * (n - 1) / n
}
