package bitmap

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/ironsheep/image-filter/internal/filter"
)

// ImageCache provides thread-safe caching of decoded images keyed by file path.
//
// Cached images are never modified. Callers that want to filter an image take a
// grid copy with LoadGrid, so the cached original stays valid for later calls.
//
// # Memory Management
//
// Images remain cached until Evict or Clear is called. Long-running servers
// handling many files should evict entries they no longer need.
//
// # Example Usage
//
//	cache := bitmap.NewImageCache()
//	g, err := bitmap.LoadGrid(cache, "/path/to/courtyard.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	filter.Blur(g)
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the decoded image at path, reading it from disk on first use.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (relative vs absolute) produce separate entries.
//
// # Errors
//
//   - ErrUnsupportedFormat if the extension is not a known image format
//   - an error wrapping the os error if the file cannot be opened
//   - an error wrapping the codec error if the contents do not decode
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes the image cached under path. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// LoadGrid loads the image at path through the cache and returns a private
// grid copy of its pixels.
func LoadGrid(c *ImageCache, path string) (*filter.Grid, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return ToGrid(img)
}

// Load reads and decodes the image file at path into a new grid without caching.
func Load(path string) (*filter.Grid, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return ToGrid(img)
}

func decodeFile(path string) (image.Image, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return Decode(f, format)
}
