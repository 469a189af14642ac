package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Faultbox/meshgen/pkg/heightfield"
)

func writeGrayPNG(t *testing.T, path string, level uint8) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestManagerHeightMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	writeGrayPNG(t, path, 255)

	m := NewManager()
	defer m.Close()

	img, err := m.HeightMap(path, 2, 2, 3)
	if err != nil {
		t.Fatalf("HeightMap() error: %v", err)
	}
	if got := img.Height(0, 0); got != 3 {
		t.Errorf("Height(0, 0) = %v, want 3", got)
	}

	again, err := m.HeightMap(path, 2, 2, 3)
	if err != nil {
		t.Fatalf("second HeightMap() error: %v", err)
	}
	if again != img {
		t.Error("expected the cached height map to be returned")
	}

	hits, misses := m.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (1, 1)", hits, misses)
	}
}

func TestManagerKeysIncludeExtent(t *testing.T) {
	var calls atomic.Int32
	m := NewManagerWithLoader(func(path string, w, h, s float64) (*heightfield.Image, error) {
		calls.Add(1)
		return heightfield.FromImage(image.NewGray(image.Rect(0, 0, 1, 1)), w, h, s)
	})

	for _, w := range []float64{1, 2, 1} {
		if _, err := m.HeightMap("same.png", w, 1, 1); err != nil {
			t.Fatalf("HeightMap() error: %v", err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("loader called %d times, want 2", got)
	}
}

func TestManagerConcurrentLoadsShareDecode(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	m := NewManagerWithLoader(func(path string, w, h, s float64) (*heightfield.Image, error) {
		calls.Add(1)
		<-release
		return heightfield.FromImage(image.NewGray(image.Rect(0, 0, 1, 1)), w, h, s)
	})

	var wg sync.WaitGroup
	results := make([]*heightfield.Image, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := m.HeightMap("terrain.png", 4, 4, 1)
			if err != nil {
				t.Errorf("HeightMap() error: %v", err)
			}
			results[i] = img
		}()
	}
	close(release)
	wg.Wait()

	if got := calls.Load(); got < 1 || got > int32(len(results)) {
		t.Fatalf("loader called %d times", got)
	}
	for i, img := range results {
		if img == nil {
			t.Errorf("result %d is nil", i)
		}
	}
	if m.cache.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", m.cache.Len())
	}
}

func TestManagerLoadError(t *testing.T) {
	sentinel := errors.New("boom")
	m := NewManagerWithLoader(func(string, float64, float64, float64) (*heightfield.Image, error) {
		return nil, sentinel
	})

	if _, err := m.HeightMap("missing.png", 1, 1, 1); !errors.Is(err, sentinel) {
		t.Errorf("HeightMap() error = %v, want wrapping %v", err, sentinel)
	}
	if m.cache.Len() != 0 {
		t.Error("failed load must not be cached")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("a", &heightfield.Image{})
	c.Get("a")
	c.Get("b")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats() = (%d, %d) after Clear, want (0, 0)", hits, misses)
	}
}
