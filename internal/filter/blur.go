package filter

import "math"

// boxSum accumulates channel totals and the number of contributing cells.
type boxSum struct {
	sum   [3]float64
	count int
}

var boxKernel = kernel[boxSum]{
	seed: func(center Pixel) boxSum {
		return boxSum{sum: channels(center), count: 1}
	},
	visit: func(acc *boxSum, _ int, n Pixel) {
		c := channels(n)
		acc.sum[0] += c[0]
		acc.sum[1] += c[1]
		acc.sum[2] += c[2]
		acc.count++
	},
	finish: func(acc *boxSum) Pixel {
		n := float64(acc.count)
		return Pixel{
			R: uint8(math.Round(acc.sum[0] / n)),
			G: uint8(math.Round(acc.sum[1] / n)),
			B: uint8(math.Round(acc.sum[2] / n)),
		}
	},
}

// Blur applies a 3x3 box blur.
//
// Each output channel is the rounded mean of the pixel and its in-bounds
// 8-connected neighbors. Neighbors outside the grid are left out of both the
// sum and the divisor, so there is no darkening at the border.
func Blur(g *Grid) {
	reduce(g, boxKernel)
}
