package filter

import "math"

// Grayscale replaces every pixel with the rounded mean of its three channels.
//
// The result is achromatic (R == G == B). Applying Grayscale twice gives the
// same grid as applying it once.
func Grayscale(g *Grid) {
	for i, p := range g.pix {
		v := uint8(math.Round((float64(p.R) + float64(p.G) + float64(p.B)) / 3.0))
		g.pix[i] = Pixel{R: v, G: v, B: v}
	}
}
