package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"

	"github.com/ironsheep/image-filter/internal/filter"
)

// ErrUnsupportedFormat is returned for file extensions no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FormatFromPath returns the container format implied by the file extension.
//
// Recognized extensions are .bmp, .png, .jpg/.jpeg, .gif and .tif/.tiff,
// in any letter case.
func FormatFromPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Decode reads one image in the given format.
func Decode(r io.Reader, format imaging.Format) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	if format == imaging.BMP {
		img, err = bmp.Decode(r)
	} else {
		img, err = imaging.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}
	return img, nil
}

// Encode writes g to w in the given format.
func Encode(w io.Writer, g *filter.Grid, format imaging.Format) error {
	img := FromGrid(g)

	var err error
	if format == imaging.BMP {
		err = bmp.Encode(w, img)
	} else {
		err = imaging.Encode(w, img, format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}
	return nil
}

// ToGrid copies the color channels of img into a new grid.
//
// The image's bounds need not start at the origin; the grid's (0, 0) is the
// image's top-left pixel.
func ToGrid(img image.Image) (*filter.Grid, error) {
	src := imaging.Clone(img)
	b := src.Bounds()

	g, err := filter.NewGrid(b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}

	pix := g.Pixels()
	for y := 0; y < b.Dy(); y++ {
		line := src.Pix[y*src.Stride:]
		for x := 0; x < b.Dx(); x++ {
			pix[y*b.Dx()+x] = filter.Pixel{R: line[4*x], G: line[4*x+1], B: line[4*x+2]}
		}
	}
	return g, nil
}

// FromGrid renders g as an opaque image anchored at the origin.
func FromGrid(g *filter.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for row := 0; row < g.Height(); row++ {
		for col, p := range g.Row(row) {
			img.SetNRGBA(col, row, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// Save encodes g into the file at path, choosing the format from the extension.
// An existing file is truncated.
func Save(path string, g *filter.Grid) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return Encode(f, g, format)
}
