package stats

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/image-filter/internal/filter"
)

func newGrid(t *testing.T, height, width int, fill func(row, col int) filter.Pixel) *filter.Grid {
	t.Helper()
	g, err := filter.NewGrid(height, width)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			g.Set(row, col, fill(row, col))
		}
	}
	return g
}

func TestSummarize_Uniform(t *testing.T) {
	g := newGrid(t, 4, 5, func(int, int) filter.Pixel {
		return filter.Pixel{R: 255, G: 0, B: 0}
	})

	s := Summarize(g, 5)

	if s.Width != 5 || s.Height != 4 || s.Pixels != 20 {
		t.Errorf("shape: got %dx%d (%d pixels)", s.Width, s.Height, s.Pixels)
	}
	if s.Mean == nil {
		t.Fatal("Mean is nil")
	}
	if s.Mean.Hex != "#ff0000" {
		t.Errorf("Mean.Hex: got %s, want #ff0000", s.Mean.Hex)
	}
	if s.Mean.HSL != (HSLColor{H: 0, S: 100, L: 50}) {
		t.Errorf("Mean.HSL: got %+v, want {0 100 50}", s.Mean.HSL)
	}
	if s.Achromatic {
		t.Error("red grid reported as achromatic")
	}
	if len(s.Dominant) != 1 || s.Dominant[0].Percentage != 100 {
		t.Errorf("Dominant: got %+v, want one color at 100%%", s.Dominant)
	}
}

func TestSummarize_AfterGrayscale(t *testing.T) {
	g := newGrid(t, 3, 3, func(row, col int) filter.Pixel {
		return filter.Pixel{R: uint8(row * 80), G: uint8(col * 80), B: 40}
	})
	if Summarize(g, 3).Achromatic {
		t.Fatal("colored grid reported as achromatic")
	}

	filter.Grayscale(g)

	s := Summarize(g, 3)
	if !s.Achromatic {
		t.Error("grayscale result not reported as achromatic")
	}
	if s.Mean.HSL.S != 0 {
		t.Errorf("Mean saturation: got %d, want 0", s.Mean.HSL.S)
	}
}

func TestSummarize_DominantOrderAndLimit(t *testing.T) {
	// 6 white, 2 black, 1 near-white that quantizes with white.
	g := newGrid(t, 3, 3, func(row, col int) filter.Pixel {
		switch {
		case row == 0 && col < 2:
			return filter.Pixel{}
		case row == 2 && col == 2:
			return filter.Pixel{R: 250, G: 250, B: 250}
		default:
			return filter.Pixel{R: 255, G: 255, B: 255}
		}
	})

	s := Summarize(g, 1)

	if len(s.Dominant) != 1 {
		t.Fatalf("Dominant: got %d colors, want 1", len(s.Dominant))
	}
	top := s.Dominant[0]
	if top.Hex != "#f0f0f0" {
		t.Errorf("top color: got %s, want #f0f0f0", top.Hex)
	}
	if top.Percentage != 77.78 {
		t.Errorf("top percentage: got %v, want 77.78", top.Percentage)
	}
}

func TestSummarize_TiesOrderedByHex(t *testing.T) {
	g := newGrid(t, 1, 2, func(_, col int) filter.Pixel {
		if col == 0 {
			return filter.Pixel{R: 255}
		}
		return filter.Pixel{B: 255}
	})

	s := Summarize(g, 10)

	if len(s.Dominant) != 2 {
		t.Fatalf("Dominant: got %d colors, want 2", len(s.Dominant))
	}
	if s.Dominant[0].Hex != "#0000f0" || s.Dominant[1].Hex != "#f00000" {
		t.Errorf("order: got %s, %s", s.Dominant[0].Hex, s.Dominant[1].Hex)
	}
}

func TestSummarize_Empty(t *testing.T) {
	g, err := filter.NewGrid(0, 3)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}

	s := Summarize(g, 5)

	if s.Mean != nil {
		t.Errorf("Mean: got %+v, want nil", s.Mean)
	}
	if !s.Achromatic {
		t.Error("empty grid should be achromatic")
	}
	if s.Dominant == nil || len(s.Dominant) != 0 {
		t.Errorf("Dominant: got %v, want empty slice", s.Dominant)
	}
	if got := s.String(); got != "3x0 empty" {
		t.Errorf("String: got %q", got)
	}
}

func TestSummary_String(t *testing.T) {
	g := newGrid(t, 2, 2, func(int, int) filter.Pixel {
		return filter.Pixel{R: 127, G: 127, B: 127}
	})

	got := Summarize(g, 1).String()
	if got != "2x2 mean #7f7f7f achromatic" {
		t.Errorf("String: got %q", got)
	}
}

func TestSummary_JSON(t *testing.T) {
	g := newGrid(t, 1, 1, func(int, int) filter.Pixel {
		return filter.Pixel{R: 1, G: 2, B: 3}
	})

	data, err := json.Marshal(Summarize(g, 1))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{`"mean"`, `"achromatic"`, `"dominant"`, `"percentage"`, `"hex"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("JSON missing %s: %s", key, data)
		}
	}
}
