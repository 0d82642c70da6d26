package bitmap

import (
	"image"
	"image/color"
	"os"
	"sync"
	"testing"

	"github.com/ironsheep/image-filter/internal/filter"
)

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestBMP(t, createStripedImage(10, 8))
	defer os.Remove(imgPath)

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b := img1.Bounds(); b.Dx() != 10 || b.Dy() != 8 {
		t.Errorf("unexpected dimensions: got %dx%d, want 10x8", b.Dx(), b.Dy())
	}

	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.bmp"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
	if cache.Len() != 0 {
		t.Errorf("failed load was cached: Len() = %d", cache.Len())
	}
}

func TestImageCache_EvictAndClear(t *testing.T) {
	cache := NewImageCache()
	p1 := createTestBMP(t, createStripedImage(4, 4))
	defer os.Remove(p1)
	p2 := createTestPNG(t, createStripedImage(4, 4))
	defer os.Remove(p2)

	for _, p := range []string{p1, p2} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load(%s) failed: %v", p, err)
		}
	}
	if cache.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", cache.Len())
	}

	cache.Evict(p1)
	cache.Evict("/never/loaded.bmp")
	if cache.Len() != 1 {
		t.Errorf("Len after Evict: got %d, want 1", cache.Len())
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}

func TestImageCache_Concurrent(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestBMP(t, createStripedImage(16, 16))
	defer os.Remove(imgPath)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestLoadGrid_ReturnsCopy(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestBMP(t, createStripedImage(5, 5))
	defer os.Remove(imgPath)

	g, err := LoadGrid(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadGrid failed: %v", err)
	}
	filter.EdgeDetect(g)

	again, err := LoadGrid(cache, imgPath)
	if err != nil {
		t.Fatalf("second LoadGrid failed: %v", err)
	}
	if got := again.At(0, 0); got != (filter.Pixel{R: 255}) {
		t.Errorf("cached image was modified: (0,0) = %v, want red", got)
	}
}

func TestLoadInfo(t *testing.T) {
	cache := NewImageCache()
	imgPath := createTestBMP(t, createStripedImage(12, 7))
	defer os.Remove(imgPath)

	info, err := LoadInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}

	if info.Width != 12 || info.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", info.Width, info.Height)
	}
	if info.Format != "bmp" {
		t.Errorf("Format: got %q, want bmp", info.Format)
	}
	if info.HasAlpha {
		t.Error("HasAlpha: got true for an opaque bitmap")
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestLoadInfo_Transparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	cache := NewImageCache()
	imgPath := createTestPNG(t, img)
	defer os.Remove(imgPath)

	info, err := LoadInfo(cache, imgPath)
	if err != nil {
		t.Fatalf("LoadInfo failed: %v", err)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %q, want png", info.Format)
	}
	if !info.HasAlpha {
		t.Error("HasAlpha: got false for a translucent PNG")
	}
}
