// Package bitmap moves images between container files and filter.Grid values.
//
// BMP files are read and written with golang.org/x/image/bmp. PNG, JPEG, GIF
// and TIFF go through github.com/disintegration/imaging. The format is chosen
// from the file extension.
//
// # Pixel Conversion
//
// ToGrid normalizes any decoded image to 8-bit non-premultiplied RGBA and keeps
// the red, green and blue channels; alpha is dropped. FromGrid produces an
// opaque *image.NRGBA, which the BMP encoder writes as a 24-bit bitmap.
// Row 0 of a grid is the top row of the image regardless of how the file
// stores its rows.
//
// # Headers
//
// Headers are regenerated on encode. Width, height, pixel content and row order
// survive a decode/encode round trip; auxiliary header fields such as the
// resolution or the V4/V5 color-space block do not.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Grids returned by LoadGrid are fresh
// copies that the caller owns.
package bitmap
