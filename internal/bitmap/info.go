package bitmap

import (
	"fmt"
	"os"
	"strings"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the container format derived from the extension: "bmp", "png",
	// "jpeg", "gif" or "tiff".
	Format string `json:"format"`

	// HasAlpha reports whether any pixel is not fully opaque. Filters ignore
	// alpha, so such images lose their transparency when saved.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and describes it.
func LoadInfo(c *ImageCache, path string) (*ImageInfo, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	if o, ok := img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}

	b := img.Bounds()
	return &ImageInfo{
		Width:         b.Dx(),
		Height:        b.Dy(),
		Format:        strings.ToLower(format.String()),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

