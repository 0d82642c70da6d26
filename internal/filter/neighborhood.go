package filter

// offset is a (row, column) displacement from the pixel being computed.
type offset struct {
	dr, dc int
}

// mooreOffsets lists the 8-connected neighborhood clockwise from the
// top-left: NW, N, NE, E, SE, S, SW, W. Kernel weight tables are indexed
// in the same order.
var mooreOffsets = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1},
	{1, 1}, {1, 0}, {1, -1},
	{0, -1},
}

// view is a read-only copy of a grid taken before a neighborhood pass.
type view struct {
	g *Grid
}

// snapshot copies the grid so that a pass can read original values while
// writing results into g.
func (g *Grid) snapshot() view {
	return view{g: g.Clone()}
}

func (v view) at(row, col int) Pixel {
	return v.g.pix[row*v.g.width+col]
}

// kernel describes a reduction over a pixel and its in-bounds Moore neighbors.
//
// seed is called once with the centre pixel, visit once per in-bounds neighbor
// with that neighbor's index into mooreOffsets, and finish produces the output.
type kernel[A any] struct {
	seed   func(center Pixel) A
	visit  func(acc *A, k int, neighbor Pixel)
	finish func(acc *A) Pixel
}

// reduce applies k to every pixel of g. All reads go through a snapshot taken
// on entry, so the traversal order does not affect the result.
func reduce[A any](g *Grid, k kernel[A]) {
	if g.height == 0 || g.width == 0 {
		return
	}
	src := g.snapshot()

	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			acc := k.seed(src.at(row, col))
			for i, o := range mooreOffsets {
				r, c := row+o.dr, col+o.dc
				if !src.g.contains(r, c) {
					continue
				}
				k.visit(&acc, i, src.at(r, c))
			}
			g.pix[row*g.width+col] = k.finish(&acc)
		}
	}
}

// channels returns the pixel as float64 components in R, G, B order.
func channels(p Pixel) [3]float64 {
	return [3]float64{float64(p.R), float64(p.G), float64(p.B)}
}
