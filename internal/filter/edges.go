package filter

import "math"

// Sobel weights in mooreOffsets order (NW, N, NE, E, SE, S, SW, W).
// As 3x3 matrices:
//
//	Gx: -1 0 1    Gy: -1 -2 -1
//	    -2 0 2         0  0  0
//	    -1 0 1         1  2  1
//
// The centre weight is zero in both kernels.
var (
	sobelX = [8]float64{-1, 0, 1, 2, 1, 0, -1, -2}
	sobelY = [8]float64{-1, -2, -1, 0, 1, 2, 1, 0}
)

// gradient holds the per-channel Sobel responses.
type gradient struct {
	gx, gy [3]float64
}

var sobelKernel = kernel[gradient]{
	seed: func(Pixel) gradient {
		return gradient{}
	},
	visit: func(acc *gradient, k int, n Pixel) {
		c := channels(n)
		for ch := range c {
			acc.gx[ch] += c[ch] * sobelX[k]
			acc.gy[ch] += c[ch] * sobelY[k]
		}
	},
	finish: func(acc *gradient) Pixel {
		return Pixel{
			R: magnitude(acc.gx[0], acc.gy[0]),
			G: magnitude(acc.gx[1], acc.gy[1]),
			B: magnitude(acc.gx[2], acc.gy[2]),
		}
	},
}

// EdgeDetect replaces every pixel with its per-channel Sobel gradient magnitude.
//
// Each channel is convolved independently with the horizontal and vertical
// Sobel kernels, combined as round(sqrt(gx*gx + gy*gy)) and capped at 255.
// Pixels beyond the border count as zero.
func EdgeDetect(g *Grid) {
	reduce(g, sobelKernel)
}

// magnitude combines two gradient components into a channel value.
func magnitude(gx, gy float64) uint8 {
	m := math.Round(math.Sqrt(gx*gx + gy*gy))
	if m > 255 {
		return 255
	}
	return uint8(m)
}
