// Package stats summarizes the colors of a filter.Grid.
//
// Summaries are used by the CLI's --stats flag and the image_summary tool to
// report what a filter did: a grayscale result is achromatic, an edge map of a
// flat image is mostly black, and so on.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-filter/internal/filter"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// Color is a single color in the representations reported by a summary.
type Color struct {
	Hex string       `json:"hex"` // "#rrggbb"
	RGB filter.Pixel `json:"rgb"`
	HSL HSLColor     `json:"hsl"`
}

// ColorFrequency is a quantized color and the share of pixels that have it.
type ColorFrequency struct {
	Color
	Percentage float64 `json:"percentage"` // 0-100
}

// Summary describes the colors of a grid.
type Summary struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Pixels int `json:"pixels"`

	// Mean is the per-channel rounded average. Nil for an empty grid.
	Mean *Color `json:"mean,omitempty"`

	// Achromatic is true when every pixel has R == G == B. An empty grid is
	// achromatic.
	Achromatic bool `json:"achromatic"`

	// Dominant lists the most frequent colors after quantization, most common
	// first.
	Dominant []ColorFrequency `json:"dominant"`
}

// Summarize computes the summary of g, keeping at most count dominant colors.
//
// # Color Quantization
//
// Similar colors are grouped by clearing the low four bits of every channel:
//
//	quantized = (original / 16) * 16
//
// so #F0F0F0 and #FAFAFA are counted together as #f0f0f0. Colors with the same
// share are ordered by hex value.
func Summarize(g *filter.Grid, count int) *Summary {
	pix := g.Pixels()
	s := &Summary{
		Width:      g.Width(),
		Height:     g.Height(),
		Pixels:     len(pix),
		Achromatic: true,
		Dominant:   []ColorFrequency{},
	}
	if len(pix) == 0 {
		return s
	}

	var sum [3]float64
	counts := make(map[filter.Pixel]int)
	for _, p := range pix {
		sum[0] += float64(p.R)
		sum[1] += float64(p.G)
		sum[2] += float64(p.B)
		if p.R != p.G || p.G != p.B {
			s.Achromatic = false
		}
		counts[quantize(p)]++
	}

	n := float64(len(pix))
	mean := describe(filter.Pixel{
		R: uint8(math.Round(sum[0] / n)),
		G: uint8(math.Round(sum[1] / n)),
		B: uint8(math.Round(sum[2] / n)),
	})
	s.Mean = &mean

	freqs := make([]ColorFrequency, 0, len(counts))
	for p, c := range counts {
		freqs = append(freqs, ColorFrequency{
			Color:      describe(p),
			Percentage: math.Round(float64(c)/n*10000) / 100,
		})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Percentage != freqs[j].Percentage {
			return freqs[i].Percentage > freqs[j].Percentage
		}
		return freqs[i].Hex < freqs[j].Hex
	})
	if count >= 0 && len(freqs) > count {
		freqs = freqs[:count]
	}
	s.Dominant = freqs

	return s
}

// String renders a one-line description, e.g. "640x480 mean #7f7f7f achromatic".
func (s *Summary) String() string {
	if s.Mean == nil {
		return fmt.Sprintf("%dx%d empty", s.Width, s.Height)
	}
	tone := "color"
	if s.Achromatic {
		tone = "achromatic"
	}
	return fmt.Sprintf("%dx%d mean %s %s", s.Width, s.Height, s.Mean.Hex, tone)
}

func quantize(p filter.Pixel) filter.Pixel {
	return filter.Pixel{R: p.R / 16 * 16, G: p.G / 16 * 16, B: p.B / 16 * 16}
}

// describe converts an 8-bit pixel into hex and HSL forms.
func describe(p filter.Pixel) Color {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	h, sat, l := c.Hsl()
	return Color{
		Hex: c.Hex(),
		RGB: p,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(sat * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
