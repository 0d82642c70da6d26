// Package filter implements the pixel transforms applied by the bitmap filter tool.
//
// Four operations are provided: Grayscale, Reflect, Blur and EdgeDetect. Each one
// takes a *Grid and rewrites it in place; none of them allocates or frees the
// caller's grid. Blur and EdgeDetect read from a private snapshot of the grid so
// that every output pixel sees only the original neighborhood.
//
// # Coordinate System
//
// Grids are row-major. Row 0 is the top row and column 0 is the leftmost pixel.
// A pixel at (row, col) is stored at index row*width + col.
//
// # Rounding
//
// Every operation that produces a fractional channel value (Grayscale, Blur and
// EdgeDetect) rounds half away from zero, as math.Round does. An average of 42.5
// therefore becomes 43, and 127.5 becomes 128.
//
// # Borders
//
// Blur and EdgeDetect treat the image border differently:
//   - Blur excludes out-of-bounds neighbors from both the sum and the divisor,
//     so corner pixels average 4 cells, edge pixels 6, and interior pixels 9.
//   - EdgeDetect treats out-of-bounds neighbors as zero (implicit zero padding),
//     the usual Sobel convention. Border pixels of a bright image therefore
//     report strong edges.
//
// # Thread Safety
//
// Operations are synchronous and keep no state between calls. Different grids
// may be filtered concurrently; the same grid must not be.
package filter
