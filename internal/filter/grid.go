package filter

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions is returned when a grid is requested with a negative
// height or width, or with backing storage of the wrong length.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Pixel is a single 24-bit color value with independent 8-bit channels.
type Pixel struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Grid is a rectangular, row-major buffer of pixels.
//
// A Grid always knows its own dimensions: the backing slice holds exactly
// Height()*Width() pixels. The zero value is a valid 0x0 grid.
type Grid struct {
	height int
	width  int
	pix    []Pixel
}

// NewGrid allocates a black grid with the given number of rows and columns.
//
// Either dimension may be zero. Negative dimensions return ErrInvalidDimensions.
func NewGrid(height, width int) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{
		height: height,
		width:  width,
		pix:    make([]Pixel, height*width),
	}, nil
}

// GridFromPixels wraps existing row-major pixel storage without copying it.
//
// The slice must hold exactly height*width pixels. Filters applied to the
// returned grid write through to pix.
func GridFromPixels(height, width int, pix []Pixel) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != height*width {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d pixels, got %d",
			ErrInvalidDimensions, width, height, height*width, len(pix))
	}
	return &Grid{height: height, width: width, pix: pix}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Pixels returns the row-major backing storage.
func (g *Grid) Pixels() []Pixel { return g.pix }

// At returns the pixel at (row, col). It panics if the position is outside the grid.
func (g *Grid) At(row, col int) Pixel {
	return g.pix[g.index(row, col)]
}

// Set stores p at (row, col). It panics if the position is outside the grid.
func (g *Grid) Set(row, col int, p Pixel) {
	g.pix[g.index(row, col)] = p
}

// Row returns the pixels of one row. The slice aliases the grid's storage.
func (g *Grid) Row(row int) []Pixel {
	if row < 0 || row >= g.height {
		panic(fmt.Sprintf("filter: row %d out of range [0,%d)", row, g.height))
	}
	start := row * g.width
	return g.pix[start : start+g.width : start+g.width]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	pix := make([]Pixel, len(g.pix))
	copy(pix, g.pix)
	return &Grid{height: g.height, width: g.width, pix: pix}
}

// Equal reports whether both grids have the same dimensions and pixels.
func (g *Grid) Equal(other *Grid) bool {
	if g.height != other.height || g.width != other.width {
		return false
	}
	for i := range g.pix {
		if g.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// contains reports whether (row, col) lies inside the grid.
func (g *Grid) contains(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

func (g *Grid) index(row, col int) int {
	if !g.contains(row, col) {
		panic(fmt.Sprintf("filter: position (%d,%d) outside %dx%d grid", row, col, g.width, g.height))
	}
	return row*g.width + col
}
